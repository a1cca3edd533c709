package cli

import (
	"os"
	"strings"

	"promodash/internal/store"
	"promodash/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "promodash",
		Short:        "Promotional dashboard (local-first) TUI + web",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  promodash

  # Serve the HTML dashboard
  promodash web --addr :5173

  # Run the API proxy (reads TWITTER_BEARER_TOKEN from env or .env)
  promodash serve
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return tui.Run(resolveDir(app))
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("PROMODASH_DIR", ""), "Path to the data dir (default: ~/.promodash)")

	cmd.AddCommand(newWebCmd(app))
	cmd.AddCommand(newServeCmd())

	return cmd
}

func resolveDir(app *App) string {
	if d := strings.TrimSpace(app.Dir); d != "" {
		return d
	}
	d, err := store.DefaultDir()
	if err != nil {
		// No resolvable home dir: fall back to a project-local store.
		return ".promodash"
	}
	return d
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
