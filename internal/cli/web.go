package cli

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"promodash/internal/web"

	"github.com/spf13/cobra"
)

func newWebCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Serve the HTML dashboard",
		Long: strings.TrimSpace(`
Serve the dashboard as server-rendered HTML from a local HTTP server.

The page reads and writes the same local store as the TUI, so both
surfaces can be used interchangeably.
`),
		Example: strings.TrimSpace(`
# Serve on the default dashboard port
promodash web

# Serve a fixture dir on another port
promodash --dir ./fixtures web --addr 127.0.0.1:8080
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr := strings.TrimSpace(addr)
			srv, err := web.NewServer(web.ServerConfig{
				Addr: listenAddr,
				Dir:  resolveDir(app),
			})
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", listenAddr)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Dashboard on http://%s/\n", ln.Addr().String())
			httpSrv := &http.Server{
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return httpSrv.Serve(ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":5173", "Listen address")
	return cmd
}
