package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/uomgrade"
	"github.com/lone-faerie/uomgrade/log"
)

// Flags for uomgrade batch
var (
	Workers int // Number of cases graded concurrently
)

// NewCmdBatch returns the [cobra.Command] used for grading a yaml file of
// cases. A file of "-" is read from stdin.
//
// Each case is printed as "<id>: <verdict>", followed by the expected
// verdict if it differs. The command exits with status 1 if any case does
// not match its expected verdict.
//
// Usage:
//
//	uomgrade batch <file> [flags]
//
// Flags:
//
//	-w, --workers int   Number of cases graded concurrently (default from config)
//	-h, --help          help for batch
func NewCmdBatch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Grade a file of cases",
		Long: `Grade a yaml file containing a list of cases, such as:

	- id: q1
	  input: celsius
	  target: kelvin
	  control: "70"
	  answer: "343.15"
	  expect: correct

The "id" and "expect" keys are optional. Cases without an id are numbered from 1.`,
		GroupID: "commands",
		Args:    cobra.ExactArgs(1),
		RunE:    runBatch,
	}

	cmd.Flags().IntVarP(&Workers, "workers", "w", 0, "Number of cases graded concurrently (default from config)")

	return cmd
}

func readCases(cmd *cobra.Command, name string) ([]uomgrade.Case, error) {
	var r io.Reader

	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r = f
	}

	return uomgrade.ReadCases(r)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cases, err := readCases(cmd, args[0])
	if err != nil {
		return &ExitError{err, 1}
	}

	workers := cfg.Batch.Workers
	if Workers > 0 {
		workers = Workers
	}

	g := uomgrade.New(uomgrade.WithProfile(cfg.Tolerance.Profile))
	results, err := g.GradeAll(cmd.Context(), cases, workers)
	if err != nil {
		return &ExitError{err, 1}
	}

	w := cmd.OutOrStdout()
	for i, res := range results {
		id := cases[i].ID
		if id == "" {
			id = fmt.Sprintf("#%d", i+1)
		}

		fmt.Fprintf(w, "%s: %s", id, res.Verdict)
		if exp := cases[i].Expect; exp != nil && *exp != res.Verdict {
			fmt.Fprintf(w, " (expected %s)", *exp)
		}
		w.Write([]byte{'\n'})

		if res.Err != nil {
			log.Info("Invalid case", "id", id, "cause", res.Err)
		}
	}

	if n := len(uomgrade.Mismatches(cases, results)); n > 0 {
		return &ExitError{fmt.Errorf("%d of %d cases did not match", n, len(cases)), 1}
	}

	return nil
}
