package cli

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"promodash/internal/proxy"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Twitter API proxy",
		Long: strings.TrimSpace(`
Run the stateless backend that forwards recent-tweet lookups to the X API.

The bearer token stays on this process: set TWITTER_BEARER_TOKEN in the
environment or in a local .env file. The proxy starts without a token and
reports the missing credential per request.
`),
		Example: strings.TrimSpace(`
# Reads .env, listens on :5174
promodash serve

# Explicit env file
promodash serve --env-file ./secrets/.env
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Missing .env is fine: the token may come from the environment.
			_ = godotenv.Load(envFile)

			cfg := proxy.ConfigFromEnv()
			srv, err := proxy.NewServer(cfg, nil)
			if err != nil {
				return err
			}
			if cfg.BearerToken == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: TWITTER_BEARER_TOKEN not set; /api/twitter will answer 500")
			}

			ln, err := net.Listen("tcp", srv.Addr())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Proxy on http://%s/ (allowing %s)\n", ln.Addr().String(), cfg.ClientOrigin)
			httpSrv := &http.Server{
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return httpSrv.Serve(ln)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Env file to load before reading configuration")
	return cmd
}
