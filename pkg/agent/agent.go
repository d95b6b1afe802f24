// Package agent exposes Moonraker operations as self-contained calls for
// agent and CLI adapters. Every call reads the connection settings, opens a
// client, performs one wrapper call and releases the client before returning.
package agent

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/config"
	"github.com/BrunoKrugel/moonraker-mcp/pkg/moonraker"
)

// Agent runs Moonraker operations against the instance described by its
// configuration source.
type Agent struct {
	source config.Source
}

// New returns an Agent reading its settings from source on every call.
func New(source config.Source) *Agent {
	if source == nil {
		source = config.FromEnv
	}
	return &Agent{source: source}
}

// FromEnv returns an Agent configured from the process environment.
func FromEnv() *Agent {
	return New(config.FromEnv)
}

// withClient opens a client for the duration of fn. Configuration errors are
// reported before any connection is made.
func withClient[T any](ctx context.Context, a *Agent, fn func(context.Context, *moonraker.Client) (T, error)) (T, error) {
	var zero T
	cfg, err := a.source()
	if err != nil {
		return zero, err
	}

	client := moonraker.NewClient(cfg.Host, cfg.Port, cfg.APIKey)
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("failed to close moonraker client")
		}
	}()

	return fn(ctx, client)
}

// GetPrinterStatus returns Klippy's state and host information.
func (a *Agent) GetPrinterStatus(ctx context.Context) (any, error) {
	return withClient(ctx, a, func(ctx context.Context, c *moonraker.Client) (any, error) {
		return moonraker.NewPrinterService(c).Info(ctx)
	})
}

// DownloadSnapshot saves a snapshot from the named webcam, or the first one,
// and returns the written path.
func (a *Agent) DownloadSnapshot(ctx context.Context, webcamName, outputPath string) (string, error) {
	return withClient(ctx, a, func(ctx context.Context, c *moonraker.Client) (string, error) {
		return moonraker.NewSnapshotDownloader(c, c.BaseURL(), nil).Download(ctx, webcamName, outputPath)
	})
}
