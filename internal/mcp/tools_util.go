// tools_util.go provides helper functions for MCP tool parameter
// extraction.
//
// Optional parameters use permissive extraction (return a default on
// error) rather than strict validation: an LLM omitting an optional
// parameter or sending the wrong JSON type should get sensible behaviour,
// not a type error it may struggle to interpret. Required parameters go
// through req.RequireString in the handlers and short-circuit to a
// validation result before any API call.

package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter, returning def when missing or
// not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the raw argument map.
// JSON booleans decode as Go bool, so a type assertion suffices.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getInt extracts an integer parameter. JSON numbers decode as float64
// in encoding/json, so assert float64 first and convert.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// getStrings extracts a string-array parameter. JSON arrays decode as
// []any; non-string elements are skipped rather than causing errors.
// Returns nil when the parameter is absent.
func getStrings(req mcp.CallToolRequest, name string) []string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	arr, ok := args[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// clampLimit normalises a result-count limit: non-positive values fall
// back to def, values above max clamp to max.
func clampLimit(n, def, max int) int {
	switch {
	case n <= 0:
		return def
	case n > max:
		return max
	default:
		return n
	}
}
