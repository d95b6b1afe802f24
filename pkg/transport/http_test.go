package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/types"
)

func newTestServer(t *testing.T) (*echo.Echo, *HTTPTransport) {
	t.Helper()
	e := echo.New()
	transport := NewHTTPTransport("/mcp")
	transport.RegisterHandler("initialize", func(context.Context, any) (any, error) {
		return map[string]any{"protocolVersion": "2024-11-05"}, nil
	})
	transport.RegisterHandler("tools/list", func(context.Context, any) (any, error) {
		return map[string]any{"tools": []any{}}, nil
	})
	transport.RegisterHandler("tools/call", func(context.Context, any) (any, error) {
		return nil, errors.New("tool failed")
	})
	transport.Mount(e)
	return e, transport
}

func post(e *echo.Echo, body, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sessionID != "" {
		req.Header.Set("Mcp-Session-Id", sessionID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNewHTTPTransport(t *testing.T) {
	t.Run("Should create new HTTP transport", func(t *testing.T) {
		transport := NewHTTPTransport("/mcp")

		assert.Equal(t, "/mcp", transport.MountPath())
		assert.NotNil(t, transport.Router)
		assert.Len(t, transport.sessions, 0)
	})

	t.Run("Should handle different mount paths", func(t *testing.T) {
		for _, path := range []string{"/api/mcp", "/v1/mcp", "/custom/path"} {
			assert.Equal(t, path, NewHTTPTransport(path).MountPath())
		}
	})
}

func TestHTTPTransport_HandleConnection(t *testing.T) {
	t.Run("Should return method not allowed error", func(t *testing.T) {
		e, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHTTPTransport_HandleMessage(t *testing.T) {
	t.Run("Should issue session id on initialize", func(t *testing.T) {
		e, transport := newTestServer(t)

		rec := post(e, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		sessionID := rec.Header().Get("Mcp-Session-Id")
		assert.NotEmpty(t, sessionID)
		assert.True(t, transport.isValidSession(sessionID))

		var response types.MCPMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Nil(t, response.Error)
		assert.Equal(t, "1", string(response.ID))
	})

	t.Run("Should accept known session id", func(t *testing.T) {
		e, transport := newTestServer(t)
		sessionID := transport.createSession()

		rec := post(e, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`, sessionID)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Should reject unknown session id", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := post(e, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`, "does-not-exist")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Should handle invalid JSON", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := post(e, `{"jsonrpc":`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Should handle missing handler", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := post(e, `{"jsonrpc":"2.0","id":3,"method":"prompts/list"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var response types.MCPMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.NotNil(t, response.Error)
		assert.Equal(t, CodeMethodNotFound, response.Error.Code)
	})

	t.Run("Should handle handler error", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := post(e, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"x"}}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var response types.MCPMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.NotNil(t, response.Error)
		assert.Equal(t, CodeInternalError, response.Error.Code)
		assert.Equal(t, "tool failed", response.Error.Message)
	})
}

func TestHTTPTransport_NotifyToolsChanged(t *testing.T) {
	t.Run("Should handle tools changed notification", func(t *testing.T) {
		assert.NotPanics(t, NewHTTPTransport("/mcp").NotifyToolsChanged)
	})
}

func TestSession(t *testing.T) {
	t.Run("Should create distinct sessions", func(t *testing.T) {
		transport := NewHTTPTransport("/mcp")

		first := transport.createSession()
		second := transport.createSession()

		assert.NotEqual(t, first, second)
		assert.Equal(t, first, transport.sessions[first].ID)
		assert.NotZero(t, transport.sessions[first].Created)
	})
}
