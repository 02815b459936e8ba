package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jacoelho/qty"
)

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <expression>",
		Short: "Show the normalized form of a quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.parse(args[0])
			if err != nil {
				return failed(err)
			}
			base, err := q.ToBase()
			if err != nil {
				return failed(err)
			}
			return failed(opts.render(opts.describe(args[0], q, base)))
		},
	}
}

func newConvertCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <expression> <units>",
		Short:   "Convert a quantity to other units",
		Example: `  qty convert "36 km/h" m/s`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.parse(args[0])
			if err != nil {
				return failed(err)
			}
			opts.log.WithFields(logrus.Fields{"input": args[0], "units": args[1]}).Debug("converting")
			out, err := q.To(args[1])
			if err != nil {
				return failed(err)
			}
			return failed(opts.render(opts.result(out)))
		},
	}
}

func newCalcCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "calc <expression> <op> <expression>",
		Short:   "Add, subtract, multiply or divide two quantities",
		Example: `  qty calc "2 m" "*" "3 km"`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := operators[args[1]]
			if !ok {
				return fmt.Errorf("unknown operator %q: want +, -, * or /", args[1])
			}
			lhs, err := opts.parse(args[0])
			if err != nil {
				return failed(err)
			}
			rhs, err := opts.parse(args[2])
			if err != nil {
				return failed(err)
			}
			opts.log.WithFields(logrus.Fields{"lhs": lhs.String(), "op": args[1], "rhs": rhs.String()}).Debug("evaluating")
			out, err := op(lhs, rhs)
			if err != nil {
				return failed(err)
			}
			return failed(opts.render(opts.result(out)))
		},
	}
}

var operators = map[string]func(a, b *qty.Quantity) (*qty.Quantity, error){
	"+": (*qty.Quantity).Add,
	"-": (*qty.Quantity).Sub,
	"*": (*qty.Quantity).Mul,
	"/": (*qty.Quantity).Div,
}

func newInverseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse <expression>",
		Short: "Show the reciprocal of a quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.parse(args[0])
			if err != nil {
				return failed(err)
			}
			out, err := q.Inverse()
			if err != nil {
				return failed(err)
			}
			return failed(opts.render(opts.result(out)))
		},
	}
}

func newKindsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the known kinds of quantity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return failed(opts.render(nameList(qty.Kinds())))
		},
	}
}

func newUnitsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "units [kind]",
		Short: "List unit names, optionally of one kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := ""
			if len(args) == 1 {
				kind = args[0]
			}
			names, err := qty.UnitNames(kind)
			if err != nil {
				return failed(err)
			}
			return failed(opts.render(nameList(names)))
		},
	}
}

func newAliasesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "aliases <unit>",
		Short: "List every spelling of a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases, err := qty.Aliases(args[0])
			if err != nil {
				return failed(err)
			}
			return failed(opts.render(nameList(aliases)))
		},
	}
}

func (o *options) parse(text string) (*qty.Quantity, error) {
	o.log.WithField("input", text).Debug("parsing quantity")
	q, err := qty.Parse(text)
	if err != nil {
		return nil, err
	}
	o.log.WithFields(logrus.Fields{
		"input":     text,
		"units":     q.Units(),
		"signature": q.Signature(),
	}).Debug("parsed quantity")
	return q, nil
}
