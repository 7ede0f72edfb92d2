package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newURLCmd(st *state) *cobra.Command {
	var host string
	c := &cobra.Command{
		Use:   "url <service>",
		Short: "Print the URL for a service",
		Long:  "Prints http://<host>:<port> for a service name (case-insensitive). Host defaults to localhost.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _, err := st.newDirectory(host)
			if err != nil {
				return err
			}
			u, err := dir.Lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
	c.Flags().StringVar(&host, "host", "", "hostname to build the URL against")
	return c
}
