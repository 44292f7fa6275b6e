package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/fuelplan/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(a *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Config == nil {
				return fmt.Errorf("serve: no configuration loaded")
			}
			sc := a.Config.Server
			if addr == "" {
				addr = sc.Addr
			}
			logger := a.Logger
			if logger == nil {
				logger = discardLogger()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := httpapi.New(a.Planner, httpapi.Options{
				CORSOrigins:     sc.CORSOrigins,
				ShutdownTimeout: time.Duration(sc.ShutdownTimeoutMs) * time.Millisecond,
				Logger:          logger,
			})
			fmt.Fprintf(cmd.ErrOrStderr(), "fuelplan listening on %s\n", addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return cmd
}
