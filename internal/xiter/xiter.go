// Package xiter holds small iterator helpers for deterministic listings.
package xiter

import (
	"cmp"
	"iter"
	"slices"
)

// Slice exposes a slice as an iterator sequence.
func Slice[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Collect gathers all values from a sequence.
func Collect[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

// Map applies fn to every value of seq.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for item := range seq {
			if !yield(fn(item)) {
				return
			}
		}
	}
}

// Unique yields the first occurrence of every value.
func Unique[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for item := range seq {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			if !yield(item) {
				return
			}
		}
	}
}

// SortedKeys yields map keys in deterministic sorted order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) iter.Seq[K] {
	keys := make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return Slice(keys)
}
