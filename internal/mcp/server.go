// Package mcp implements the Model Context Protocol server, exposing the
// Stash read-later service to LLMs as a set of schema-described tools.
// Each tool call is fulfilled by one or more Stash API requests and
// returns a single text block.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/stash-reader/stash-mcp/internal/api"
	"github.com/stash-reader/stash-mcp/internal/audit"
	"github.com/stash-reader/stash-mcp/internal/config"
	"github.com/stash-reader/stash-mcp/internal/importer"
	"github.com/stash-reader/stash-mcp/internal/version"
)

// Result-count limits. Values above the maximum are clamped silently
// rather than rejected; LLMs routinely ask for more than they need.
const (
	defaultListLimit   = 20
	maxListLimit       = 100
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

// apiClient is the slice of api.Client the handlers use. Narrowed to an
// interface so tests can verify which calls a tool invocation makes
// (including that validation failures make none).
type apiClient interface {
	List(ctx context.Context, limit int) ([]api.Article, error)
	Search(ctx context.Context, query, mode string, limit int) ([]api.Article, error)
	Get(ctx context.Context, id string) (*api.Article, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Save(ctx context.Context, req api.SaveRequest) (*api.SaveResponse, error)
	DiscoveryQueue(ctx context.Context) ([]api.DiscoveryItem, error)
	DiscoveryGenerate(ctx context.Context) ([]api.DiscoveryItem, error)
	DiscoveryDismiss(ctx context.Context, id string) error
}

// handlers provides MCP request handlers with access to the API client.
// Each invocation is independent; handlers hold no mutable state, so
// concurrent tool calls need no locking.
type handlers struct {
	client apiClient
}

// Serve starts the MCP server over stdio. The config must already be
// validated; the missing-token case is handled at startup by the caller,
// never here.
func Serve(cfg *config.Config) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := audit.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer audit.Close()
	audit.SetAccount(cfg.APIURL)

	h := &handlers{client: api.New(cfg.APIURL, cfg.Token)}

	s := server.NewMCPServer(
		"stash-mcp",
		version.Version,
		server.WithToolCapabilities(true),
	)
	registerTools(s, h)

	slog.Info("stash-mcp server ready", "version", version.Version, "transport", "stdio", "api", cfg.APIURL)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// registerTools exposes Stash operations as MCP tools. An unrecognised
// tool name is answered by the mcp-go dispatcher with a fixed error
// result; it never reaches a handler and never crashes the server.
func registerTools(s *server.MCPServer, h *handlers) {
	// List recent articles
	s.AddTool(
		mcp.NewTool("stash_list",
			mcp.WithDescription("List your most recently saved articles, newest first."),
			mcp.WithNumber("limit", mcp.Description("Maximum articles to return (default 20, max 100)")),
		),
		h.listArticles,
	)

	// Search
	s.AddTool(
		mcp.NewTool("stash_search",
			mcp.WithDescription("Search saved articles. Keyword mode matches title and text; semantic mode finds conceptually related articles."),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			mcp.WithString("mode", mcp.Description("Search mode (default keyword)"), mcp.Enum(api.ModeKeyword, api.ModeSemantic)),
			mcp.WithNumber("limit", mcp.Description("Maximum results to return (default 20, max 50)")),
		),
		h.searchArticles,
	)

	// Get one article
	s.AddTool(
		mcp.NewTool("stash_get",
			mcp.WithDescription("Fetch a single saved article by id, including its content."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Article id")),
		),
		h.getArticle,
	)

	// Save
	s.AddTool(
		mcp.NewTool("stash_save",
			mcp.WithDescription("Save a URL to your Stash account."),
			mcp.WithString("url", mcp.Required(), mcp.Description("URL to save")),
			mcp.WithString("title", mcp.Description("Override the extracted title")),
			mcp.WithString("markdown", mcp.Description("Provide article content directly instead of fetching the URL")),
		),
		h.saveArticle,
	)

	// Mark read
	s.AddTool(
		mcp.NewTool("stash_mark_read",
			mcp.WithDescription("Mark a saved article as read."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Article id")),
		),
		h.markRead,
	)

	// Delete
	s.AddTool(
		mcp.NewTool("stash_delete",
			mcp.WithDescription("Delete a saved article."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Article id")),
		),
		h.deleteArticle,
	)

	// Batch import
	s.AddTool(
		mcp.NewTool("stash_import",
			mcp.WithDescription("Import a list of URLs into Stash. URLs are processed in batches; duplicates are skipped and individual failures never abort the run."),
			mcp.WithArray("urls", mcp.Required(), mcp.Description("URLs to import, in order"), mcp.Items(map[string]any{"type": "string"})),
			mcp.WithBoolean("mark_as_read", mcp.Description("Mark each imported article as read (default false)")),
			mcp.WithNumber("batch_size", mcp.Description("Items per batch (default 10, max 20)")),
		),
		h.importArticles,
	)

	// Discovery queue
	s.AddTool(
		mcp.NewTool("stash_discovery_queue",
			mcp.WithDescription("Show the current queue of suggested articles."),
		),
		h.discoveryQueue,
	)

	// Discovery generate
	s.AddTool(
		mcp.NewTool("stash_discovery_generate",
			mcp.WithDescription("Generate fresh article suggestions from your reading history."),
		),
		h.discoveryGenerate,
	)

	// Discovery dismiss
	s.AddTool(
		mcp.NewTool("stash_discovery_dismiss",
			mcp.WithDescription("Dismiss a suggestion from the discovery queue."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Suggestion id")),
		),
		h.discoveryDismiss,
	)

	// Guide
	s.AddTool(
		mcp.NewTool("stash_guide",
			mcp.WithDescription("Get usage guidance for stash-mcp tools."),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'import', 'auth') or empty for the index")),
		),
		h.getGuide,
	)
}

// importArticles handles stash_import tool calls: the batch pipeline.
func (h *handlers) importArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	urls := getStrings(req, "urls")
	if len(urls) == 0 {
		return mcp.NewToolResultError("urls is required and must not be empty"), nil
	}

	opts := importer.Options{
		MarkRead:  getBool(req, "mark_as_read", false),
		BatchSize: getInt(req, "batch_size", importer.DefaultBatchSize),
	}

	result, err := importer.Run(ctx, h.client, urls, opts)

	audit.Event("mcp:stash_import", "import").
		Detail("urls", len(urls)).
		Detail("succeeded", len(result.Succeeded)).
		Detail("skipped", len(result.Skipped)).
		Detail("failed", len(result.Failed)).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result.Summary()), nil
}
