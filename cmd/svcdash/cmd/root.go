package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/corey/svcdash/internal/app"
	"github.com/corey/svcdash/internal/config"
	"github.com/corey/svcdash/internal/domain/directory"
	"github.com/corey/svcdash/internal/logger"
)

// state is shared by all subcommands of one root command.
type state struct {
	cfg    config.Config
	logger *slog.Logger
}

// newDirectory builds a Directory for host from the configured services file.
func (s *state) newDirectory(host string) (*directory.Directory, []directory.Binding, error) {
	table, bindings, err := app.LoadServices(s.cfg.ServicesFile)
	if err != nil {
		return nil, nil, err
	}
	return directory.New(table, host, directory.WithLogger(s.logger)), bindings, nil
}

func newRootCmd() *cobra.Command {
	st := &state{}
	cfg, cfgErr := config.Load()
	st.cfg = cfg

	root := &cobra.Command{
		Use:           "svcdash",
		Short:         "svcdash — service URL directory and dashboard",
		Long:          "Maps service names to http://<host>:<port> URLs and rewrites dashboard links to match.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			l, err := logger.New(logger.Options{
				Level:  st.cfg.LogLevel,
				Format: logger.Format(st.cfg.LogFormat),
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			st.logger = l
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.cfg.ServicesFile, "services", cfg.ServicesFile, "TOML file overriding the service table and link bindings")
	pf.StringVar(&st.cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&st.cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")

	root.AddCommand(newURLCmd(st))
	root.AddCommand(newListCmd(st))
	root.AddCommand(newSyncCmd(st))
	root.AddCommand(newServeCmd(st))
	root.AddCommand(newConfigCmd(st))
	return root
}

// Execute runs the root command.
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
		return err
	}
	return nil
}
