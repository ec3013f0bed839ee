// serve.go implements the "stash-mcp serve" command.
//
// Unlike the other commands, serve blocks indefinitely handling MCP
// requests over stdio. The credential check happens here, before the
// server starts: a missing token exits nonzero with a diagnostic naming
// the variable and the remedy, never a per-call error later.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stash-reader/stash-mcp/internal/config"
	"github.com/stash-reader/stash-mcp/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM
integration. Requires an API token; run 'stash-mcp auth' first.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		cmd.SilenceUsage = true
		return err
	}
	return mcp.Serve(cfg)
}

// loadConfig merges file, environment and the --api-url flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	return cfg, nil
}
