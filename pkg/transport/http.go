package transport

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/types"
)

// Ensure HTTPTransport implements Transport at compile time.
var _ Transport = (*HTTPTransport)(nil)

// HTTPTransport implements MCP over HTTP (Streamable HTTP transport)
type HTTPTransport struct {
	*Router
	sessions  map[string]*Session
	mountPath string
	mu        sync.RWMutex
}

// Session represents an HTTP session
type Session struct {
	ID      string
	Created int64
}

// NewHTTPTransport creates a new HTTP transport
func NewHTTPTransport(mountPath string) *HTTPTransport {
	return &HTTPTransport{
		Router:    NewRouter(),
		mountPath: mountPath,
		sessions:  make(map[string]*Session),
	}
}

// Mount registers the transport's routes on e
func (h *HTTPTransport) Mount(e *echo.Echo) {
	e.POST(h.mountPath, h.HandleMessage)
	e.GET(h.mountPath, h.HandleConnection)
}

// MountPath returns the mount path
func (h *HTTPTransport) MountPath() string {
	return h.mountPath
}

// HandleConnection rejects GET requests; this transport does not stream
// server-initiated messages.
func (h *HTTPTransport) HandleConnection(c echo.Context) error {
	return echo.NewHTTPError(http.StatusMethodNotAllowed, "GET method not supported for HTTP transport")
}

// HandleMessage processes incoming MCP messages via POST
func (h *HTTPTransport) HandleMessage(c echo.Context) error {
	sessionID := c.Request().Header.Get("Mcp-Session-Id")

	var msg types.MCPMessage
	if err := c.Bind(&msg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message format")
	}

	if msg.Method == "initialize" {
		return h.handleInitialize(c, &msg)
	}

	if sessionID != "" && !h.isValidSession(sessionID) {
		return echo.NewHTTPError(http.StatusNotFound, "Session not found")
	}

	response := h.Process(c.Request().Context(), &msg)
	return c.JSON(http.StatusOK, response)
}

// handleInitialize specifically handles initialize requests
func (h *HTTPTransport) handleInitialize(c echo.Context, msg *types.MCPMessage) error {
	response := h.Process(c.Request().Context(), msg)

	sessionID := h.createSession()
	c.Response().Header().Set("Mcp-Session-Id", sessionID)

	return c.JSON(http.StatusOK, response)
}

// createSession creates a new session
func (h *HTTPTransport) createSession() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessionID := uuid.New().String()
	h.sessions[sessionID] = &Session{
		ID:      sessionID,
		Created: time.Now().Unix(),
	}

	return sessionID
}

// isValidSession checks if a session ID is valid
func (h *HTTPTransport) isValidSession(sessionID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.sessions[sessionID]
	return exists
}

// NotifyToolsChanged sends a tools changed notification (not applicable for HTTP transport)
func (h *HTTPTransport) NotifyToolsChanged() {
	log.Debug("[HTTP] NotifyToolsChanged called (no-op for HTTP transport)")
}
