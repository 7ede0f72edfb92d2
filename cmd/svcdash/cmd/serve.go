package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/svcdash/internal/app"
)

func newServeCmd(st *state) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard with links rewritten for each visitor's host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(app.Config{
				Addr:          st.cfg.Addr,
				DashboardPath: st.cfg.DashboardPath,
				ServicesFile:  st.cfg.ServicesFile,
				Watch:         st.cfg.Watch,
				Logger:        st.logger,
			})
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			if err := a.Start(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "⚡ svcdash dashboard at %s\n", a.WebServer.URL())

			// Wait for shutdown signal
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			fmt.Fprintln(cmd.OutOrStdout(), "\n⚡ shutting down...")
			return a.Stop()
		},
	}
	f := c.Flags()
	f.StringVar(&st.cfg.Addr, "addr", st.cfg.Addr, "listen address")
	f.StringVar(&st.cfg.DashboardPath, "dashboard", st.cfg.DashboardPath, "dashboard HTML file (default: embedded page)")
	f.BoolVar(&st.cfg.Watch, "watch", st.cfg.Watch, "reload the dashboard file when it changes")
	return c
}
