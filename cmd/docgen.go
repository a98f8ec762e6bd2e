//go:build docgen

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func addDocGen(root *cobra.Command) {
	docgen := &cobra.Command{
		Use:    "docgen",
		Short:  "Generate documentation",
		Hidden: true,
	}

	docgen.AddCommand(&cobra.Command{
		Use:   "man [dir]",
		Short: "Generate man pages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "docs/man"
			if len(args) > 0 {
				dir = args[0]
			}
			hdr := &doc.GenManHeader{
				Title:   "UOMGRADE",
				Section: "1",
			}
			if err := os.MkdirAll(dir, 0750); err != nil {
				return err
			}
			return doc.GenManTree(root, hdr, dir)
		},
	})

	root.AddCommand(docgen)
}
