// Package convert moves values between MCP tool payloads and Go types.
package convert

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Arguments decodes tool call arguments into dst, which must be a pointer to
// a struct with json tags. Fields absent from args keep their current value,
// so dst can be pre-filled with defaults.
func Arguments(args map[string]any, dst any) error {
	if len(args) == 0 {
		return nil
	}
	raw, err := sonic.ConfigStd.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	if err := sonic.ConfigStd.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// ToText renders a tool result for a text content item. Strings are returned
// unchanged; everything else is encoded as JSON.
func ToText(result any) (string, error) {
	switch v := result.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	raw, err := sonic.ConfigStd.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(raw), nil
}
