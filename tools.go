package server

import (
	"context"
	"fmt"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/convert"
	"github.com/BrunoKrugel/moonraker-mcp/pkg/moonraker"
	"github.com/BrunoKrugel/moonraker-mcp/pkg/types"
)

// Tool names exposed to MCP clients.
const (
	ToolGetPrinterStatus  = "get_printer_status"
	ToolListFiles         = "list_files"
	ToolGetJobQueueStatus = "get_job_queue_status"
	ToolListObjects       = "list_objects"
	ToolDownloadSnapshot  = "download_snapshot"
)

// Printer is the set of operations the tools dispatch to. It is implemented
// by *agent.Agent.
type Printer interface {
	GetPrinterStatus(ctx context.Context) (any, error)
	ListFiles(ctx context.Context, root string) (any, error)
	GetJobQueueStatus(ctx context.Context) (any, error)
	ListObjects(ctx context.Context) (any, error)
	DownloadSnapshot(ctx context.Context, webcamName, outputPath string) (string, error)
}

type noArgs struct{}

type listFilesArgs struct {
	Root string `json:"root,omitempty" default:"gcodes" description:"File root to list, such as gcodes or config."`
}

type downloadSnapshotArgs struct {
	WebcamName string `json:"webcam_name,omitempty" description:"Webcam to capture from. Defaults to the first configured webcam."`
	OutputPath string `json:"output_path,omitempty" default:"snapshot.jpg" description:"Local path the image is written to."`
}

type toolFunc func(ctx context.Context, p Printer, args map[string]any) (any, error)

type toolEntry struct {
	call        toolFunc
	args        any
	name        string
	description string
}

var catalog = []toolEntry{
	{
		name:        ToolGetPrinterStatus,
		description: "Get the current status of the printer.",
		args:        noArgs{},
		call: func(ctx context.Context, p Printer, _ map[string]any) (any, error) {
			return p.GetPrinterStatus(ctx)
		},
	},
	{
		name:        ToolListFiles,
		description: "List available files in a root.",
		args:        listFilesArgs{},
		call: func(ctx context.Context, p Printer, raw map[string]any) (any, error) {
			args := listFilesArgs{Root: moonraker.DefaultRoot}
			if err := convert.Arguments(raw, &args); err != nil {
				return nil, err
			}
			return p.ListFiles(ctx, args.Root)
		},
	},
	{
		name:        ToolGetJobQueueStatus,
		description: "Get the current status of the job queue.",
		args:        noArgs{},
		call: func(ctx context.Context, p Printer, _ map[string]any) (any, error) {
			return p.GetJobQueueStatus(ctx)
		},
	},
	{
		name:        ToolListObjects,
		description: "List loaded printer objects.",
		args:        noArgs{},
		call: func(ctx context.Context, p Printer, _ map[string]any) (any, error) {
			return p.ListObjects(ctx)
		},
	},
	{
		name:        ToolDownloadSnapshot,
		description: "Download a snapshot from the webcam.",
		args:        downloadSnapshotArgs{},
		call: func(ctx context.Context, p Printer, raw map[string]any) (any, error) {
			args := downloadSnapshotArgs{OutputPath: moonraker.DefaultSnapshotPath}
			if err := convert.Arguments(raw, &args); err != nil {
				return nil, err
			}
			return p.DownloadSnapshot(ctx, args.WebcamName, args.OutputPath)
		},
	},
}

// buildTools declares the static tool catalogue.
func buildTools() ([]types.Tool, map[string]toolFunc, error) {
	tools := make([]types.Tool, 0, len(catalog))
	calls := make(map[string]toolFunc, len(catalog))

	for _, entry := range catalog {
		schema, err := types.GetSchema(entry.args)
		if err != nil {
			return nil, nil, fmt.Errorf("tool %s: %w", entry.name, err)
		}
		tools = append(tools, types.Tool{
			Name:        entry.name,
			Description: entry.description,
			InputSchema: schema,
		})
		calls[entry.name] = entry.call
	}

	return tools, calls, nil
}
