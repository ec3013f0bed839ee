// tools_search.go implements the stash_search MCP tool.
//
// Separated from tools_articles.go because search has mode-dependent
// semantics: the mode selects the remote endpoint, and failure wording
// differs between modes (a semantic outage suggests keyword mode).

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stash-reader/stash-mcp/internal/api"
	"github.com/stash-reader/stash-mcp/internal/audit"
	"github.com/stash-reader/stash-mcp/internal/format"
)

// searchArticles handles stash_search tool calls.
func (h *handlers) searchArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	mode := getString(req, "mode", api.ModeKeyword)
	if mode != api.ModeKeyword && mode != api.ModeSemantic {
		return mcp.NewToolResultError("mode must be \"keyword\" or \"semantic\""), nil
	}
	limit := clampLimit(getInt(req, "limit", defaultSearchLimit), defaultSearchLimit, maxSearchLimit)

	articles, err := h.client.Search(ctx, query, mode, limit)

	audit.Event("mcp:stash_search", "search").
		Detail("query", query).
		Detail("mode", mode).
		Detail("count", len(articles)).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(format.SearchError(mode, err)), nil
	}
	return mcp.NewToolResultText(format.Articles(articles, "No articles matched your search.")), nil
}
