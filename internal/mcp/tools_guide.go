// tools_guide.go exposes the embedded usage guides over MCP, so LLM
// clients can load tool documentation into context on demand.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stash-reader/stash-mcp/guide"
)

// getGuide handles stash_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)
	if err != nil {
		available, listErr := guide.List()
		if listErr != nil {
			return mcp.NewToolResultError(listErr.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("guide %q not found. Available: %s", topic, strings.Join(available, ", "))), nil
	}
	return mcp.NewToolResultText(content), nil
}
