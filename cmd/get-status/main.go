// Command get-status prints the printer status reported by Moonraker.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/agent"
	"github.com/BrunoKrugel/moonraker-mcp/pkg/cli"
)

func main() {
	if err := newCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var (
		opts   cli.Options
		output string
	)
	cmd := &cobra.Command{
		Use:           "get-status",
		Short:         "Print the printer status",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(*cobra.Command, []string) error {
			return opts.Setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := agent.FromEnv().GetPrinterStatus(cmd.Context())
			if err != nil {
				return err
			}
			return cli.Print(cmd.OutOrStdout(), status, output)
		},
	}
	opts.Bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", cli.FormatJSON, "output format (json or yaml)")
	return cmd
}
