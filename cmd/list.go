package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lone-faerie/uomgrade/units"
)

// Flags for uomgrade list
var (
	ListSummary bool // Display a comma-separated summary of units
)

var families = []units.Family{units.Temperature, units.Volume}

// NewCmdList returns the [cobra.Command] used for listing the supported units.
//
// If families are given as arguments, only their units are listed.
//
// Usage:
//
//	uomgrade list [flags] [family]...
//
// Aliases:
//
//	list, l
//
// Flags:
//
//	-s, --summary   Display a comma-separated summary of units
//	-h, --help      help for list
func NewCmdList() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [family]...",
		Aliases: []string{"l"},
		Short:   "List supported units",
		GroupID: "commands",
		ValidArgs: []cobra.Completion{
			cobra.CompletionWithDesc("temperature", "kelvin, celsius, fahrenheit, rankine"),
			cobra.CompletionWithDesc("volume", "liters, tablespoons, cubic-inches, cups, cubic-feet, gallons"),
		},
		Args: cobra.OnlyValidArgs,
		RunE: listUnits,
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVarP(&ListSummary, "summary", "s", false, "Display a comma-separated summary of units")

	return cmd
}

func selected(args []string) []units.Family {
	if len(args) == 0 {
		return families
	}
	return slices.DeleteFunc(slices.Clone(families), func(f units.Family) bool {
		return !slices.Contains(args, f.String())
	})
}

func printUnits(w io.Writer, ff []units.Family) {
	title := cases.Title(language.English)

	for _, f := range ff {
		fmt.Fprintf(w, "%s:\n", title.String(f.String()))
		for _, u := range f.Units() {
			fmt.Fprintf(w, "  %s\n", title.String(u.String()))
		}
	}
}

func printSummary(w io.Writer, ff []units.Family) {
	var names []string

	for _, f := range ff {
		for _, u := range f.Units() {
			names = append(names, strings.ToLower(u.String()))
		}
	}

	io.WriteString(w, strings.Join(names, ", "))
	w.Write([]byte{'\n'})
}

func listUnits(cmd *cobra.Command, args []string) error {
	ff := selected(args)

	if ListSummary {
		printSummary(cmd.OutOrStdout(), ff)
	} else {
		printUnits(cmd.OutOrStdout(), ff)
	}

	return nil
}
