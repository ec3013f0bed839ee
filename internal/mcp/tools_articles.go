// tools_articles.go implements MCP tools for single-article operations:
// list, get, save, mark read, delete.
//
// Errors return MCP tool error results rather than Go errors, so the LLM
// receives actionable text it can relay or act on instead of a protocol-
// level failure. The message wording comes from internal/format and is
// part of the tool contract.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stash-reader/stash-mcp/internal/api"
	"github.com/stash-reader/stash-mcp/internal/audit"
	"github.com/stash-reader/stash-mcp/internal/format"
)

// listArticles handles stash_list tool calls.
func (h *handlers) listArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := clampLimit(getInt(req, "limit", defaultListLimit), defaultListLimit, maxListLimit)

	articles, err := h.client.List(ctx, limit)

	audit.Event("mcp:stash_list", "list").Detail("limit", limit).Detail("count", len(articles)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(format.Generic(err)), nil
	}
	return mcp.NewToolResultText(format.Articles(articles, "No saved articles yet.")), nil
}

// getArticle handles stash_get tool calls.
func (h *handlers) getArticle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil //nolint:nilerr
	}

	article, err := h.client.Get(ctx, id)

	audit.Event("mcp:stash_get", "read").Target(id).Write(err)

	if err != nil {
		return mcp.NewToolResultError(format.ArticleError(id, err)), nil
	}
	return mcp.NewToolResultText(format.Article(article)), nil
}

// saveArticle handles stash_save tool calls.
func (h *handlers) saveArticle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	u, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url is required"), nil //nolint:nilerr
	}

	resp, err := h.client.Save(ctx, api.SaveRequest{
		URL:      u,
		Title:    getString(req, "title", ""),
		Markdown: getString(req, "markdown", ""),
	})

	audit.Event("mcp:stash_save", "save").Detail("url", u).Write(err)

	if err != nil {
		return mcp.NewToolResultError(format.SaveError(err)), nil
	}
	if resp.AlreadySaved() {
		return mcp.NewToolResultText("Already saved: " + u), nil
	}
	return mcp.NewToolResultText(format.Saved(resp, false)), nil
}

// markRead handles stash_mark_read tool calls.
func (h *handlers) markRead(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil //nolint:nilerr
	}

	err = h.client.MarkRead(ctx, id)

	audit.Event("mcp:stash_mark_read", "mark-read").Target(id).Write(err)

	if err != nil {
		return mcp.NewToolResultError(format.ArticleError(id, err)), nil
	}
	return mcp.NewToolResultText("Marked article " + id + " as read."), nil
}

// deleteArticle handles stash_delete tool calls.
func (h *handlers) deleteArticle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil //nolint:nilerr
	}

	err = h.client.Delete(ctx, id)

	audit.Event("mcp:stash_delete", "delete").Target(id).Write(err)

	if err != nil {
		return mcp.NewToolResultError(format.ArticleError(id, err)), nil
	}
	return mcp.NewToolResultText("Deleted article " + id + "."), nil
}
