// Command take-snapshot saves one webcam snapshot from the printer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/agent"
	"github.com/BrunoKrugel/moonraker-mcp/pkg/cli"
)

const defaultOutput = "webcam_snapshot.jpg"

func main() {
	if err := newCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var (
		opts   cli.Options
		webcam string
		output string
	)
	cmd := &cobra.Command{
		Use:           "take-snapshot",
		Short:         "Save a webcam snapshot",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(*cobra.Command, []string) error {
			return opts.Setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := agent.FromEnv().DownloadSnapshot(cmd.Context(), webcam, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot saved to: %s\n", path)
			return nil
		},
	}
	opts.Bind(cmd)
	cmd.Flags().StringVarP(&webcam, "webcam", "w", "", "webcam name (defaults to the first configured webcam)")
	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "file the snapshot is written to")
	return cmd
}
