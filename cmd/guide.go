// guide.go implements the "stash-mcp guide" command for documentation
// access. Guides are embedded in the binary, so documentation is always
// available without external files. Terminal output gets glamour
// rendering; pipe/redirect gets raw markdown for machine consumption.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stash-reader/stash-mcp/guide"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the stash-mcp usage guide",
		Long: `Outputs the stash-mcp guide for LLMs and humans.

  stash-mcp guide          # main guide
  stash-mcp guide import   # batch import guide
  stash-mcp guide auth     # token setup guide`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", "))
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(cmd.OutOrStdout(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}
