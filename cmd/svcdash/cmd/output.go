package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/svcdash/internal/domain/directory"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
)

// formatEntries formats the service list for terminal display.
//
//	⚡ 21 services │ host 10.0.0.5
//	  NGINX            9080  http://10.0.0.5:9080
func formatEntries(host string, entries []directory.Entry) string {
	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d services%s │ host %s\n", colorBold, len(entries), colorReset, host))
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %s%-*s%s  %s%5d%s  %s\n",
			colorCyan, width, e.Name, colorReset,
			colorMagenta, e.Port, colorReset,
			e.URL))
	}
	return sb.String()
}

// formatReport formats a sync report for terminal display.
//
//	⚡ 3 links → 10.0.0.5
//	  nginx  http://old:9080 → http://10.0.0.5:9080
func formatReport(r directory.SyncReport) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d links%s → %s\n", colorBold, len(r.Rewritten), colorReset, r.Host))
	for _, rw := range r.Rewritten {
		from := rw.From
		if from == "" {
			from = "(none)"
		}
		sb.WriteString(fmt.Sprintf("  %s%s%s  %s%s%s → %s%s%s\n",
			colorCyan, rw.Service, colorReset,
			colorGray, from, colorReset,
			colorGreen, rw.To, colorReset))
	}
	for _, name := range r.Skipped {
		sb.WriteString(fmt.Sprintf("  %s✗ %s: unknown service%s\n", colorYellow, name, colorReset))
	}
	return sb.String()
}
