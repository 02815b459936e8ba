package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// runWithArgs executes the command tree and maps the outcome to an exit code:
// 0 on success, 1 on a runtime failure and 2 on a usage error.
func runWithArgs(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	root := newRootCommand(opts, stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if opts.stopCPUProfile != nil {
		if stopErr := opts.stopCPUProfile(); stopErr != nil {
			_ = writef(stderr, "error stopping CPU profile: %v\n", stopErr)
		}
	}
	if opts.memProfilePath != "" && opts.started {
		if memErr := writeMemProfile(opts.memProfilePath); memErr != nil {
			_ = writef(stderr, "error writing memory profile: %v\n", memErr)
		}
	}
	if err == nil {
		return 0
	}

	var rerr *runtimeError
	if errors.As(err, &rerr) {
		if writeErr := writef(stderr, "error: %v\n", rerr.err); writeErr != nil {
			return 1
		}
		return 1
	}
	if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
		return 1
	}
	if writeErr := writef(stderr, "Run '%s --help' for usage.\n", root.Name()); writeErr != nil {
		return 1
	}
	return 2
}

// runtimeError marks a failure that happened after the arguments were
// accepted.
type runtimeError struct {
	err error
}

func (e *runtimeError) Error() string { return e.err.Error() }

func (e *runtimeError) Unwrap() error { return e.err }

func failed(err error) error {
	if err == nil {
		return nil
	}
	return &runtimeError{err: err}
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

func startCPUProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return nil, fmt.Errorf("start cpu profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return nil, fmt.Errorf("start cpu profile %s: %w", path, err)
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("close cpu profile %s: %w", path, err)
		}
		return nil
	}, nil
}

func writeMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mem profile %s: %w", path, err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("write mem profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return fmt.Errorf("write mem profile %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close mem profile %s: %w", path, err)
	}
	return nil
}
