package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/moonraker"
	"github.com/BrunoKrugel/moonraker-mcp/pkg/types"
)

type fakePrinter struct {
	err        error
	calls      []string
	root       string
	webcamName string
	outputPath string
}

func (f *fakePrinter) GetPrinterStatus(context.Context) (any, error) {
	f.calls = append(f.calls, ToolGetPrinterStatus)
	return map[string]any{"result": map[string]any{"state": "ready"}}, f.err
}

func (f *fakePrinter) ListFiles(_ context.Context, root string) (any, error) {
	f.calls = append(f.calls, ToolListFiles)
	f.root = root
	return map[string]any{"result": []any{map[string]any{"path": "cube.gcode"}}}, f.err
}

func (f *fakePrinter) GetJobQueueStatus(context.Context) (any, error) {
	f.calls = append(f.calls, ToolGetJobQueueStatus)
	return map[string]any{"result": map[string]any{"queue_state": "ready"}}, f.err
}

func (f *fakePrinter) ListObjects(context.Context) (any, error) {
	f.calls = append(f.calls, ToolListObjects)
	return map[string]any{"result": map[string]any{"objects": []any{"gcode", "toolhead"}}}, f.err
}

func (f *fakePrinter) DownloadSnapshot(_ context.Context, webcamName, outputPath string) (string, error) {
	f.calls = append(f.calls, ToolDownloadSnapshot)
	f.webcamName = webcamName
	f.outputPath = outputPath
	return outputPath, f.err
}

func TestNew(t *testing.T) {
	t.Run("Should create new instance with default identity", func(t *testing.T) {
		mcp := New(&fakePrinter{})

		name, version, description := mcp.GetServerInfo()
		assert.Equal(t, DefaultName, name)
		assert.Equal(t, DefaultVersion, version)
		assert.Empty(t, description)
	})

	t.Run("Should use provided config", func(t *testing.T) {
		mcp := NewWithConfig(&fakePrinter{}, &Config{
			Name:        "Workshop Printer",
			Version:     "2.0.0",
			Description: "Voron in the garage",
		})

		name, version, description := mcp.GetServerInfo()
		assert.Equal(t, "Workshop Printer", name)
		assert.Equal(t, "2.0.0", version)
		assert.Equal(t, "Voron in the garage", description)
	})
}

func TestTools(t *testing.T) {
	t.Run("Should declare exactly five tools", func(t *testing.T) {
		tools := New(&fakePrinter{}).Tools()

		names := make([]string, 0, len(tools))
		for _, tool := range tools {
			names = append(names, tool.Name)
			assert.NotEmpty(t, tool.Description)
			assert.NotNil(t, tool.InputSchema)
		}
		assert.Equal(t, []string{
			ToolGetPrinterStatus,
			ToolListFiles,
			ToolGetJobQueueStatus,
			ToolListObjects,
			ToolDownloadSnapshot,
		}, names)
	})

	t.Run("Should describe list_files root with gcodes default", func(t *testing.T) {
		tool := findTool(t, New(&fakePrinter{}).Tools(), ToolListFiles)

		schema := tool.InputSchema.(map[string]any)
		assert.Equal(t, "object", schema["type"])
		root := schema["properties"].(map[string]any)["root"].(map[string]any)
		assert.Equal(t, "string", root["type"])
		assert.Equal(t, "gcodes", root["default"])
	})

	t.Run("Should describe download_snapshot arguments", func(t *testing.T) {
		tool := findTool(t, New(&fakePrinter{}).Tools(), ToolDownloadSnapshot)

		properties := tool.InputSchema.(map[string]any)["properties"].(map[string]any)
		assert.Contains(t, properties, "webcam_name")
		output := properties["output_path"].(map[string]any)
		assert.Equal(t, "snapshot.jpg", output["default"])
	})

	t.Run("Should declare empty object schema for argument-free tools", func(t *testing.T) {
		tool := findTool(t, New(&fakePrinter{}).Tools(), ToolGetPrinterStatus)

		schema := tool.InputSchema.(map[string]any)
		assert.Equal(t, "object", schema["type"])
		assert.Equal(t, map[string]any{}, schema["properties"])
	})
}

func TestCallTool(t *testing.T) {
	t.Run("Should dispatch get_printer_status and wrap result as text", func(t *testing.T) {
		printer := &fakePrinter{}
		mcp := New(printer)

		resp, err := mcp.CallTool(context.Background(), ToolGetPrinterStatus, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{ToolGetPrinterStatus}, printer.calls)
		require.Len(t, resp.Content, 1)
		assert.Equal(t, "text", resp.Content[0].Type)
		assert.JSONEq(t, `{"result":{"state":"ready"}}`, resp.Content[0].Text)
	})

	t.Run("Should default list_files root to gcodes", func(t *testing.T) {
		printer := &fakePrinter{}

		_, err := New(printer).CallTool(context.Background(), ToolListFiles, map[string]any{})

		require.NoError(t, err)
		assert.Equal(t, "gcodes", printer.root)
	})

	t.Run("Should pass list_files root through", func(t *testing.T) {
		printer := &fakePrinter{}

		_, err := New(printer).CallTool(context.Background(), ToolListFiles, map[string]any{"root": "config"})

		require.NoError(t, err)
		assert.Equal(t, "config", printer.root)
	})

	t.Run("Should dispatch job queue and object tools", func(t *testing.T) {
		printer := &fakePrinter{}
		mcp := New(printer)

		_, err := mcp.CallTool(context.Background(), ToolGetJobQueueStatus, nil)
		require.NoError(t, err)
		_, err = mcp.CallTool(context.Background(), ToolListObjects, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{ToolGetJobQueueStatus, ToolListObjects}, printer.calls)
	})

	t.Run("Should return snapshot path verbatim", func(t *testing.T) {
		printer := &fakePrinter{}

		resp, err := New(printer).CallTool(context.Background(), ToolDownloadSnapshot, map[string]any{
			"webcam_name": "nozzle",
		})

		require.NoError(t, err)
		assert.Equal(t, "nozzle", printer.webcamName)
		assert.Equal(t, "snapshot.jpg", printer.outputPath)
		assert.Equal(t, "snapshot.jpg", resp.Content[0].Text)
	})

	t.Run("Should fail for unknown tool", func(t *testing.T) {
		printer := &fakePrinter{}

		_, err := New(printer).CallTool(context.Background(), "emergency_stop", nil)

		assert.ErrorIs(t, err, ErrUnknownTool)
		assert.Empty(t, printer.calls)
	})

	t.Run("Should propagate printer errors", func(t *testing.T) {
		printer := &fakePrinter{err: moonraker.ErrNotFound}

		_, err := New(printer).CallTool(context.Background(), ToolDownloadSnapshot, nil)

		assert.ErrorIs(t, err, moonraker.ErrNotFound)
	})

	t.Run("Should reject mistyped arguments", func(t *testing.T) {
		printer := &fakePrinter{}

		_, err := New(printer).CallTool(context.Background(), ToolListFiles, map[string]any{"root": 7})

		assert.Error(t, err)
		assert.Empty(t, printer.calls)
	})
}

func TestHandleInitialize(t *testing.T) {
	t.Run("Should return proper initialize response", func(t *testing.T) {
		mcp := NewWithConfig(&fakePrinter{}, &Config{Name: "Test API", Version: "1.2.3"})

		result, err := mcp.handleInitialize(context.Background(), nil)

		require.NoError(t, err)
		resp, ok := result.(InitializeResponse)
		require.True(t, ok)
		assert.Equal(t, ProtocolVersion, resp.ProtocolVersion)
		assert.NotNil(t, resp.Capabilities.Tools)
		assert.Equal(t, "Test API", resp.ServerInfo.Name)
		assert.Equal(t, "1.2.3", resp.ServerInfo.Version)
	})
}

func TestHandleToolCall(t *testing.T) {
	t.Run("Should handle valid tool call", func(t *testing.T) {
		printer := &fakePrinter{}
		mcp := New(printer)

		result, err := mcp.handleToolCall(context.Background(), map[string]any{
			"name":      ToolListFiles,
			"arguments": map[string]any{"root": "config"},
		})

		require.NoError(t, err)
		resp, ok := result.(ToolCallResponse)
		require.True(t, ok)
		assert.Len(t, resp.Content, 1)
		assert.Equal(t, "config", printer.root)
	})

	t.Run("Should handle missing arguments", func(t *testing.T) {
		printer := &fakePrinter{}

		_, err := New(printer).handleToolCall(context.Background(), map[string]any{"name": ToolListObjects})

		assert.NoError(t, err)
		assert.Equal(t, []string{ToolListObjects}, printer.calls)
	})

	t.Run("Should handle missing tool name", func(t *testing.T) {
		_, err := New(&fakePrinter{}).handleToolCall(context.Background(), map[string]any{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing tool name")
	})

	t.Run("Should reject mistyped tool call fields", func(t *testing.T) {
		printer := &fakePrinter{}
		mcp := New(printer)

		_, err := mcp.handleToolCall(context.Background(), map[string]any{"name": 5})
		assert.ErrorContains(t, err, "invalid parameters")

		_, err = mcp.handleToolCall(context.Background(), map[string]any{
			"name":      ToolListFiles,
			"arguments": "root=config",
		})
		assert.ErrorContains(t, err, "invalid parameters")

		assert.Empty(t, printer.calls)
	})

	t.Run("Should handle invalid parameters", func(t *testing.T) {
		_, err := New(&fakePrinter{}).handleToolCall(context.Background(), "invalid")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid parameters")
	})
}

func TestMount(t *testing.T) {
	t.Run("Should serve tools/list over HTTP", func(t *testing.T) {
		e := echo.New()
		New(&fakePrinter{}).Mount(e, "/mcp")

		body := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
		req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var response map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		tools := response["result"].(map[string]any)["tools"].([]any)
		assert.Len(t, tools, 5)
	})

	t.Run("Should reject GET on mount path", func(t *testing.T) {
		e := echo.New()
		New(&fakePrinter{}).Mount(e, "/mcp")

		req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestServeStdio(t *testing.T) {
	t.Run("Should run a full session over stdio", func(t *testing.T) {
		printer := &fakePrinter{}
		in := strings.NewReader(strings.Join([]string{
			`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
			`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
			`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_printer_status"}}`,
			`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"nope"}}`,
		}, "\n") + "\n")
		var out bytes.Buffer

		err := New(printer).ServeStdio(context.Background(), in, &out)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 3)

		var initResp, callResp, unknownResp types.MCPMessage
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &initResp))
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &callResp))
		require.NoError(t, json.Unmarshal([]byte(lines[2]), &unknownResp))

		assert.Nil(t, initResp.Error)
		assert.Nil(t, callResp.Error)
		assert.Equal(t, "2", string(callResp.ID))
		require.NotNil(t, unknownResp.Error)
		assert.Contains(t, unknownResp.Error.Message, "unknown tool")
		assert.Equal(t, []string{ToolGetPrinterStatus}, printer.calls)
	})
}

func findTool(t *testing.T, tools []types.Tool, name string) types.Tool {
	t.Helper()
	for _, tool := range tools {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("tool %s not declared", name)
	return types.Tool{}
}
