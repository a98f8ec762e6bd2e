//go:build !docgen

package cmd

import "github.com/spf13/cobra"

func addDocGen(_ *cobra.Command) {}
