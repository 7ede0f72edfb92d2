package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(st *state) *cobra.Command {
	var (
		host   string
		asJSON bool
	)
	c := &cobra.Command{
		Use:   "list",
		Short: "List all services with their ports and URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _, err := st.newDirectory(host)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dir.Entries())
			}
			fmt.Fprint(cmd.OutOrStdout(), formatEntries(dir.Host(), dir.Entries()))
			return nil
		},
	}
	c.Flags().StringVar(&host, "host", "", "hostname to build URLs against")
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return c
}
