package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
	"sigs.k8s.io/yaml"

	"github.com/jacoelho/qty"
)

// texter renders a document in the plain text output format.
type texter interface {
	writeText(w io.Writer) error
}

type resultDoc struct {
	Quantity string  `json:"quantity"`
	Scalar   float64 `json:"scalar"`
	Units    string  `json:"units"`
	Kind     string  `json:"kind,omitempty"`
}

func (d resultDoc) writeText(w io.Writer) error {
	return writeln(w, d.Quantity)
}

type parseDoc struct {
	Input string `json:"input"`
	resultDoc
	Numerator   []string `json:"numerator"`
	Denominator []string `json:"denominator"`
	Signature   int64    `json:"signature"`
	Base        string   `json:"base"`
}

func (d parseDoc) writeText(w io.Writer) error {
	lines := []struct{ key, value string }{
		{"quantity", d.Quantity},
		{"scalar", fmt.Sprint(d.Scalar)},
		{"units", d.Units},
		{"numerator", strings.Join(d.Numerator, " ")},
		{"denominator", strings.Join(d.Denominator, " ")},
		{"kind", d.Kind},
		{"signature", fmt.Sprint(d.Signature)},
		{"base", d.Base},
	}
	for _, line := range lines {
		if err := writef(w, "%s: %s\n", line.key, line.value); err != nil {
			return err
		}
	}
	return nil
}

type nameList []string

func (l nameList) writeText(w io.Writer) error {
	for _, name := range l {
		if err := writeln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) result(q *qty.Quantity) resultDoc {
	v := q.Scalar()
	if o.precision >= 0 {
		v = scalar.Round(v, o.precision)
	}
	text, _ := q.Format("", o.precision)
	return resultDoc{Quantity: text, Scalar: v, Units: q.Units(), Kind: q.Kind()}
}

func (o *options) describe(input string, q, base *qty.Quantity) parseDoc {
	baseText, _ := base.Format("", o.precision)
	return parseDoc{
		Input:       input,
		resultDoc:   o.result(q),
		Numerator:   q.Numerator(),
		Denominator: q.Denominator(),
		Signature:   q.Signature(),
		Base:        baseText,
	}
}

func (o *options) render(doc texter) error {
	switch o.output {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return writeln(o.stdout, string(data))
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = o.stdout.Write(data)
		return err
	default:
		return doc.writeText(o.stdout)
	}
}
