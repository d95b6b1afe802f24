// Package cli holds the flag handling shared by the moonraker-mcp commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/config"
)

// Output formats accepted by --output.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnsupportedFormat is returned by Print for a format other than json or yaml.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Options are the persistent flags every command accepts.
type Options struct {
	EnvFile  string
	LogLevel string
}

// Bind registers --env-file and --log-level on cmd.
func (o *Options) Bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.EnvFile, "env-file", config.DefaultEnvFile, "dotenv file loaded before reading MOONRAKER_* variables")
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", log.WarnLevel.String(), "log level (debug, info, warn, error)")
}

// Setup configures logrus to write to stderr and loads the env file.
// Stdout is left untouched since the stdio transport owns it.
func (o *Options) Setup() error {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.LogLevel, err)
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	return config.LoadEnvFile(o.EnvFile)
}

// Print writes v to w in the given format.
func Print(w io.Writer, v any, format string) error {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		payload, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(payload))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
