// tools_discovery.go implements MCP tools for the discovery queue:
// suggested articles the service generates from reading history.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stash-reader/stash-mcp/internal/audit"
	"github.com/stash-reader/stash-mcp/internal/format"
)

// discoveryQueue handles stash_discovery_queue tool calls.
func (h *handlers) discoveryQueue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := h.client.DiscoveryQueue(ctx)

	audit.Event("mcp:stash_discovery_queue", "list").Detail("count", len(items)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(format.Generic(err)), nil
	}
	return mcp.NewToolResultText(format.Suggestions(items, "The discovery queue is empty. Use stash_discovery_generate to get fresh suggestions.")), nil
}

// discoveryGenerate handles stash_discovery_generate tool calls.
func (h *handlers) discoveryGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := h.client.DiscoveryGenerate(ctx)

	audit.Event("mcp:stash_discovery_generate", "generate").Detail("count", len(items)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(format.GenerateError(err)), nil
	}
	return mcp.NewToolResultText(format.Suggestions(items, "No new suggestions were generated.")), nil
}

// discoveryDismiss handles stash_discovery_dismiss tool calls.
func (h *handlers) discoveryDismiss(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil //nolint:nilerr
	}

	err = h.client.DiscoveryDismiss(ctx, id)

	audit.Event("mcp:stash_discovery_dismiss", "dismiss").Target(id).Write(err)

	if err != nil {
		return mcp.NewToolResultError(format.SuggestionError(id, err)), nil
	}
	return mcp.NewToolResultText("Dismissed suggestion " + id + "."), nil
}
