// Command moonraker-mcp serves a Moonraker printer as an MCP tool server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	server "github.com/BrunoKrugel/moonraker-mcp"
	"github.com/BrunoKrugel/moonraker-mcp/pkg/agent"
	"github.com/BrunoKrugel/moonraker-mcp/pkg/cli"
)

const (
	transportStdio = "stdio"
	transportHTTP  = "http"
)

type serveOptions struct {
	transport string
	addr      string
	mount     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("moonraker-mcp failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cli.Options
	root := &cobra.Command{
		Use:           "moonraker-mcp",
		Short:         "Moonraker tools for MCP clients",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return opts.Setup()
		},
	}
	opts.Bind(root)
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		Long: `Run moonraker-mcp as a Model Context Protocol server.

The printer is selected with MOONRAKER_HOST, MOONRAKER_PORT and the optional
MOONRAKER_API_KEY, read from the environment or the --env-file on every tool
call.

Available tools: get_printer_status, list_files, get_job_queue_status,
list_objects, download_snapshot`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			mcp := server.New(agent.FromEnv())
			switch opts.transport {
			case transportStdio:
				log.Info("serving MCP on stdio")
				return mcp.ServeStdio(ctx, os.Stdin, os.Stdout)
			case transportHTTP:
				return serveHTTP(ctx, mcp, opts)
			default:
				return fmt.Errorf("unknown transport %q", opts.transport)
			}
		},
	}
	cmd.Flags().StringVar(&opts.transport, "transport", transportStdio, "transport to serve (stdio or http)")
	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address for the http transport")
	cmd.Flags().StringVar(&opts.mount, "mount", "/mcp", "mount path for the http transport")
	return cmd
}

func serveHTTP(ctx context.Context, mcp *server.MoonrakerMCP, opts serveOptions) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	mcp.Mount(e, opts.mount)

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{"addr": opts.addr, "mount": opts.mount}).Info("serving MCP over http")
		errCh <- e.Start(opts.addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
