package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/types"
)

// JSON-RPC error codes used by the transports.
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// MessageHandler defines the function signature for handling MCP messages
type MessageHandler func(ctx context.Context, params any) (any, error)

// Transport defines the interface for MCP transport mechanisms
type Transport interface {
	// RegisterHandler registers a message handler for a specific method
	RegisterHandler(method string, handler MessageHandler)

	// NotifyToolsChanged sends a notification that tools have changed
	NotifyToolsChanged()
}

// Router holds the registered handlers and turns requests into responses.
// It is shared by every transport.
type Router struct {
	handlers map[string]MessageHandler
	mu       sync.RWMutex
}

// NewRouter creates an empty Router
func NewRouter() *Router {
	return &Router{handlers: make(map[string]MessageHandler)}
}

// RegisterHandler registers a message handler
func (r *Router) RegisterHandler(method string, handler MessageHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[method] = handler
}

func (r *Router) handler(method string) (MessageHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[method]
	return h, ok
}

// Process handles an incoming MCP message and returns a response
func (r *Router) Process(ctx context.Context, msg *types.MCPMessage) *types.MCPMessage {
	response := &types.MCPMessage{
		Jsonrpc: "2.0",
		ID:      msg.ID,
	}

	handler, exists := r.handler(msg.Method)
	if !exists {
		response.Error = &types.MCPError{
			Code:    CodeMethodNotFound,
			Message: fmt.Sprintf("Method '%s' not found", msg.Method),
		}
		return response
	}

	result, err := handler(ctx, msg.Params)
	if err != nil {
		response.Error = &types.MCPError{
			Code:    CodeInternalError,
			Message: err.Error(),
		}
	} else {
		response.Result = result
	}

	return response
}
