package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/svcdash/internal/app"
)

func newConfigCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long:  "Shows the effective settings after environment variables and flags are applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, bindings, err := app.LoadServices(st.cfg.ServicesFile)
			if err != nil {
				return err
			}

			dashboard := st.cfg.DashboardPath
			if dashboard == "" {
				dashboard = "(embedded)"
			}
			services := st.cfg.ServicesFile
			if services == "" {
				services = "(built-in)"
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s⚡ svcdash config%s\n", colorBold, colorReset)
			fmt.Fprintf(w, "  Listen:     %s\n", st.cfg.Addr)
			fmt.Fprintf(w, "  Dashboard:  %s\n", dashboard)
			fmt.Fprintf(w, "  Watch:      %t\n", st.cfg.Watch)
			fmt.Fprintf(w, "  Services:   %s (%d services, %d port bindings)\n", services, table.Len(), len(bindings))
			fmt.Fprintf(w, "  Log:        %s/%s\n", st.cfg.LogLevel, st.cfg.LogFormat)
			return nil
		},
	}
}
