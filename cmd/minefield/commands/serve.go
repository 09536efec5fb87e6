package commands

import (
	"github.com/spf13/cobra"

	"github.com/vancomm/minefield-annotator/internal/app"
)

func serveCmd(g *globals) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the annotator over HTTP and WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.OptionsFromEnv()
			if addr != "" {
				opts.Addr = addr
			}
			return app.New(g.log, opts).Start(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides APP_ADDR)")
	return cmd
}
