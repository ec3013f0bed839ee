// auth.go implements the "stash-mcp auth" command: interactive token
// entry. The token is read without echo and written to the config file
// with owner-only permissions.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stash-reader/stash-mcp/internal/config"
)

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Store your Stash API token",
		Long: fmt.Sprintf(`Prompts for a Stash API token and stores it in %s.

Create a token at %s`, config.Path(), config.TokenURL),
		RunE: runAuth,
	}
}

func runAuth(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Paste your Stash API token (from %s): ", config.TokenURL)

	var token string
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		token = string(raw)
	} else {
		// Piped input (scripts, tests)
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &token); err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("no token entered")
	}

	cfg.Token = token
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", config.Path())
	return nil
}
