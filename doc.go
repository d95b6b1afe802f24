/*
Package server exposes a Moonraker 3D printer as a Model Context Protocol (MCP) tool server.

Five tools are declared statically and dispatched to a Printer implementation,
normally *agent.Agent which opens one Moonraker connection per call:

  - get_printer_status: Klippy state and host information
  - list_files: files in a root (default "gcodes")
  - get_job_queue_status: job queue state and queued jobs
  - list_objects: loaded printer objects
  - download_snapshot: save a webcam snapshot to a local file

# Quick Start

Serve over stdin/stdout for a local agent host:

	package main

	import (
		"context"
		"os"

		server "github.com/BrunoKrugel/moonraker-mcp"
		"github.com/BrunoKrugel/moonraker-mcp/pkg/agent"
	)

	func main() {
		mcp := server.New(agent.FromEnv())
		if err := mcp.ServeStdio(context.Background(), os.Stdin, os.Stdout); err != nil {
			os.Exit(1)
		}
	}

The agent reads MOONRAKER_HOST, MOONRAKER_PORT and the optional
MOONRAKER_API_KEY on every tool call.

# Streamable HTTP

The same tools can be mounted on an Echo instance:

	e := echo.New()
	server.New(agent.FromEnv()).Mount(e, "/mcp")
	e.Start(":8080")

The HTTP transport issues an Mcp-Session-Id header on initialize and rejects
unknown session ids.

# Tool Results

Every successful call returns a single text content item. String results such
as the snapshot path are returned verbatim; JSON results from Moonraker are
re-encoded as JSON text. Calling a name outside the catalogue fails with
ErrUnknownTool.
*/
package server
