package main

import (
	"fmt"

	"github.com/oukeidos/gt/internal/language"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported languages",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Supported Languages:")
			fmt.Fprintf(out, "  %-35s [%s]  (source only)\n", language.Name(language.Auto), language.Auto)
			for _, l := range language.Supported() {
				fmt.Fprintf(out, "  %-35s [%s]\n", l.Name, l.Code)
			}
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
