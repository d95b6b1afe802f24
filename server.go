package server

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/convert"
	"github.com/BrunoKrugel/moonraker-mcp/pkg/transport"
	"github.com/BrunoKrugel/moonraker-mcp/pkg/types"
)

const (
	// DefaultName is reported in serverInfo when no name is configured.
	DefaultName = "moonraker-mcp"
	// DefaultVersion is reported in serverInfo when no version is configured.
	DefaultVersion = "0.1.0"
	// ProtocolVersion is the MCP revision this server speaks.
	ProtocolVersion = "2024-11-05"
)

// ErrUnknownTool is returned by tools/call for a name outside the catalogue.
var ErrUnknownTool = errors.New("unknown tool")

// MoonrakerMCP exposes a fixed set of Moonraker operations as MCP tools.
type MoonrakerMCP struct {
	printer     Printer
	calls       map[string]toolFunc
	name        string
	version     string
	description string
	tools       []types.Tool
}

// Config holds the identity the server reports to clients.
type Config struct {
	Name        string
	Version     string
	Description string
}

// NewWithConfig creates a MoonrakerMCP instance dispatching to printer
func NewWithConfig(printer Printer, config *Config) *MoonrakerMCP {
	if config == nil {
		config = &Config{}
	}

	tools, calls, err := buildTools()
	if err != nil {
		// The catalogue is static, so this only fails on a programming error.
		panic(err)
	}

	name := config.Name
	if name == "" {
		name = DefaultName
	}
	version := config.Version
	if version == "" {
		version = DefaultVersion
	}

	return &MoonrakerMCP{
		printer:     printer,
		calls:       calls,
		name:        name,
		version:     version,
		description: config.Description,
		tools:       tools,
	}
}

// New creates a MoonrakerMCP instance with the default identity
func New(printer Printer) *MoonrakerMCP {
	return NewWithConfig(printer, nil)
}

// Register installs the MCP method handlers on t
func (m *MoonrakerMCP) Register(t transport.Transport) {
	t.RegisterHandler("initialize", m.handleInitialize)
	t.RegisterHandler("notifications/initialized", m.handleInitialized)
	t.RegisterHandler("ping", m.handlePing)
	t.RegisterHandler("tools/list", m.handleToolsList)
	t.RegisterHandler("tools/call", m.handleToolCall)
}

// Mount mounts the MCP server at the specified path on e
func (m *MoonrakerMCP) Mount(e *echo.Echo, path string) *transport.HTTPTransport {
	t := transport.NewHTTPTransport(path)
	m.Register(t)
	t.Mount(e)
	return t
}

// ServeStdio serves MCP over newline-delimited JSON-RPC until in is
// exhausted or ctx is cancelled.
func (m *MoonrakerMCP) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	t := transport.NewStdioTransport(in, out)
	m.Register(t)
	return t.Serve(ctx)
}

// Tools returns the declared tool catalogue
func (m *MoonrakerMCP) Tools() []types.Tool {
	return m.tools
}

// CallTool runs the named tool and wraps its result in a text content item.
func (m *MoonrakerMCP) CallTool(ctx context.Context, name string, arguments map[string]any) (ToolCallResponse, error) {
	call, ok := m.calls[name]
	if !ok {
		return ToolCallResponse{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	logger := log.WithField("tool", name)
	logger.Debug("calling tool")

	result, err := call(ctx, m.printer, arguments)
	if err != nil {
		logger.WithError(err).Warn("tool call failed")
		return ToolCallResponse{}, err
	}

	text, err := convert.ToText(result)
	if err != nil {
		return ToolCallResponse{}, err
	}

	return ToolCallResponse{
		Content: []Content{
			{
				Type: "text",
				Text: text,
			},
		},
	}, nil
}

// handleInitialize handles MCP initialize requests
func (m *MoonrakerMCP) handleInitialize(_ context.Context, _ any) (any, error) {
	return InitializeResponse{
		ProtocolVersion: ProtocolVersion,
		Capabilities: &Capabilities{
			Tools: map[string]any{},
		},
		ServerInfo: &ServerInfo{
			Name:    m.name,
			Version: m.version,
		},
		Instructions: m.description,
	}, nil
}

func (m *MoonrakerMCP) handleInitialized(_ context.Context, _ any) (any, error) {
	log.Debug("client initialized")
	return nil, nil
}

func (m *MoonrakerMCP) handlePing(_ context.Context, _ any) (any, error) {
	return map[string]any{}, nil
}

// handleToolsList handles tools/list requests
func (m *MoonrakerMCP) handleToolsList(_ context.Context, _ any) (any, error) {
	return ToolsListResponse{
		Tools: m.tools,
	}, nil
}

// handleToolCall handles tools/call requests
func (m *MoonrakerMCP) handleToolCall(ctx context.Context, params any) (any, error) {
	paramMap, ok := params.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid parameters")
	}

	var req ToolCallRequest
	if err := convert.Arguments(paramMap, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("missing tool name")
	}

	return m.CallTool(ctx, req.Name, req.Arguments)
}

// GetServerInfo returns the server information (useful for testing)
func (m *MoonrakerMCP) GetServerInfo() (name, version, description string) {
	return m.name, m.version, m.description
}
