package types

import (
	"encoding/json"
	"fmt"

	"github.com/swaggest/jsonschema-go"
)

// RawMessage is a raw encoded JSON value.
// It implements Marshaler and Unmarshaler and can
// be used to delay JSON decoding or precompute a JSON encoding.
type RawMessage json.RawMessage

// MarshalJSON returns m as the JSON encoding of m.
func (m RawMessage) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return m, nil
}

// UnmarshalJSON sets *m to a copy of data.
func (m *RawMessage) UnmarshalJSON(data []byte) error {
	if m == nil {
		return fmt.Errorf("cannot unmarshal into nil RawMessage")
	}
	*m = append((*m)[0:0], data...)
	return nil
}

// MCPMessage represents a generic MCP message structure
type MCPMessage struct {
	Params  any        `json:"params,omitempty"`
	Result  any        `json:"result,omitempty"`
	Error   *MCPError  `json:"error,omitempty"`
	Jsonrpc string     `json:"jsonrpc"`
	Method  string     `json:"method,omitempty"`
	ID      RawMessage `json:"id,omitempty"`
}

// MCPError represents an MCP error
type MCPError struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Tool represents an MCP tool definition
type Tool struct {
	InputSchema any    `json:"inputSchema"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GetSchema generates a JSON schema for the arguments struct input. Field
// names come from json tags; description, default and required come from the
// matching struct tags. A nil input yields an empty object schema.
func GetSchema(input any) (map[string]any, error) {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
	if input == nil {
		return schema, nil
	}

	reflector := jsonschema.Reflector{}
	reflected, err := reflector.Reflect(input, jsonschema.InlineRefs)
	if err != nil {
		return nil, fmt.Errorf("reflect schema for %T: %w", input, err)
	}

	raw, err := json.Marshal(reflected)
	if err != nil {
		return nil, fmt.Errorf("encode schema for %T: %w", input, err)
	}
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("decode schema for %T: %w", input, err)
	}

	// Clients expect an object schema with properties, even when empty.
	schema["type"] = "object"
	if _, ok := schema["properties"]; !ok {
		schema["properties"] = map[string]any{}
	}
	return schema, nil
}
