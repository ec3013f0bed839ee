// root.go defines the root command and CLI execution entry point.
//
// The binary's real work happens in `stash-mcp serve`; the remaining
// commands (auth, guide, version) exist so users can set up and learn
// the tool without an MCP client attached.

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// apiURL is the --api-url override, applied on top of file and env
// configuration in loadConfig.
var apiURL string

var rootCmd = &cobra.Command{
	Use:   "stash-mcp",
	Short: "MCP server for the Stash read-later service",
	Long: `stash-mcp exposes your Stash account to LLMs over the Model Context
Protocol: saving, searching, reading, batch-importing and discovering
articles through schema-described tools.

Run 'stash-mcp auth' once to store your API token, then point your MCP
client at 'stash-mcp serve'.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Stash API root (overrides config and STASH_API_URL)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command. Exit code 1 indicates error; the only
// startup condition that halts the process is command failure, which
// includes the missing-credential check in serve.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
