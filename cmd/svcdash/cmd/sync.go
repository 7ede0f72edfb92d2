package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/svcdash/internal/adapters/htmldoc"
)

func newSyncCmd(st *state) *cobra.Command {
	var (
		host    string
		out     string
		inPlace bool
	)
	c := &cobra.Command{
		Use:   "sync <file.html>",
		Short: "Rewrite a dashboard page's service links for a host",
		Long: "Parses an HTML page, points its service links at http://<host>:<port> and writes the result\n" +
			"to stdout, --out, or back to the file with --in-place. A summary goes to stderr.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inPlace && out != "" {
				return errors.New("--out and --in-place are mutually exclusive")
			}
			src := args[0]

			f, err := os.Open(src)
			if err != nil {
				return err
			}
			doc, err := htmldoc.Parse(f)
			f.Close()
			if err != nil {
				return err
			}

			dir, bindings, err := st.newDirectory(host)
			if err != nil {
				return err
			}
			report := dir.Sync(doc, bindings)

			var buf bytes.Buffer
			if err := doc.Render(&buf); err != nil {
				return fmt.Errorf("render: %w", err)
			}

			dst := out
			if inPlace {
				dst = src
			}
			if dst == "" {
				if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
					return err
				}
			} else if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("write %s: %w", dst, err)
			}

			fmt.Fprint(cmd.ErrOrStderr(), formatReport(report))
			return nil
		},
	}
	c.Flags().StringVar(&host, "host", "", "hostname to point links at (default localhost)")
	c.Flags().StringVarP(&out, "out", "o", "", "write the rewritten page to this file")
	c.Flags().BoolVar(&inPlace, "in-place", false, "overwrite the input file")
	return c
}
