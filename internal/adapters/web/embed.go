// Package web serves the service dashboard over HTTP.
// Each page load rewrites the dashboard's service links for the hostname
// the request arrived on, and a small JSON API exposes the same lookups.
package web

import _ "embed"

// defaultDashboard is used when no dashboard file is configured.
//
//go:embed static/index.html
var defaultDashboard []byte
