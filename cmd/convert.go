package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/uomgrade/units"
)

// NewCmdConvert returns the [cobra.Command] used for converting a value
// without grading it.
//
// Usage:
//
//	uomgrade convert <from> <to> <value> [flags]
//
// Aliases:
//
//	convert, c
func NewCmdConvert() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert <from> <to> <value>",
		Aliases: []string{"c"},
		Short:   "Convert a value between units",
		Example: `  uomgrade convert fahrenheit celsius 70
  uomgrade convert cups tablespoons 0.5`,
		GroupID: "commands",
		Args:    cobra.ExactArgs(3),
		RunE:    runConvert,
	}

	cmd.Flags().SortFlags = false

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, err := units.Parse(args[0])
	if err != nil {
		return &ExitError{err, 1}
	}

	to, err := units.Parse(args[1])
	if err != nil {
		return &ExitError{err, 1}
	}

	if err = units.Check(from, to); err != nil {
		return &ExitError{err, 1}
	}

	v, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return &ExitError{err, 1}
	}

	out, _ := units.Convert(from, to, v)
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(out, 'g', -1, 64))

	return nil
}
