// import.go implements the "stash-mcp import" command: the batch import
// pipeline driven from the CLI instead of an MCP client. URLs come from
// a file argument or stdin, one per line; the pipeline and its outcome
// accounting are identical to the stash_import tool.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stash-reader/stash-mcp/internal/api"
	"github.com/stash-reader/stash-mcp/internal/audit"
	"github.com/stash-reader/stash-mcp/internal/importer"
)

func newImportCmd() *cobra.Command {
	var markRead bool
	var batchSize int

	c := &cobra.Command{
		Use:   "import [file]",
		Short: "Batch-import URLs into Stash",
		Long: `Import a list of URLs, one per line. Blank lines and lines starting
with # are ignored. Reads from stdin when no file is given.

  stash-mcp import urls.txt
  cat urls.txt | stash-mcp import --mark-read`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				cmd.SilenceUsage = true
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			urls, err := readURLs(in)
			if err != nil {
				return err
			}

			if err := audit.Open(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
			}
			defer audit.Close()
			audit.SetAccount(cfg.APIURL)

			client := api.New(cfg.APIURL, cfg.Token)
			result, err := importer.Run(cmd.Context(), client, urls, importer.Options{
				MarkRead:  markRead,
				BatchSize: batchSize,
			})

			audit.Event("cli:import", "import").
				Detail("urls", len(urls)).
				Detail("failed", len(result.Failed)).
				Write(err)

			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
			return nil
		},
	}

	c.Flags().BoolVar(&markRead, "mark-read", false, "mark each imported article as read")
	c.Flags().IntVar(&batchSize, "batch-size", importer.DefaultBatchSize, "items per batch (max 20)")
	return c
}

// readURLs parses one URL per line, skipping blanks and # comments.
func readURLs(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
