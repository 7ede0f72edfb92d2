package directory

import (
	"strings"

	"github.com/corey/svcdash/internal/ports"
)

// ServiceAttr names the anchor attribute that binds a link to a service
// explicitly, e.g. <a data-service="grafana">.
const ServiceAttr = "data-service"

// Binding associates a link with a service by a port literal found in
// the link's current href.
type Binding struct {
	Port    string `toml:"port" json:"port"`
	Service string `toml:"service" json:"service"`
}

// DefaultBindings returns the built-in port bindings. Only these five
// services are matched by port; every other service needs a data-service
// attribute on its link.
func DefaultBindings() []Binding {
	return []Binding{
		{Port: "9080", Service: "nginx"},
		{Port: "9081", Service: "apache"},
		{Port: "9082", Service: "busybox"},
		{Port: "9083", Service: "memcached"},
		{Port: "3000", Service: "app"},
	}
}

// Rewrite records one href change made by Sync.
type Rewrite struct {
	Service string `json:"service"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// SyncReport summarizes a Sync run. Skipped lists data-service names that
// could not be resolved.
type SyncReport struct {
	Host      string    `json:"host"`
	Rewritten []Rewrite `json:"rewritten"`
	Skipped   []string  `json:"skipped,omitempty"`
}

// Sync points the document's service links at this directory's host.
//
// Anchors carrying a data-service attribute are rewritten first. Then, for
// each binding in order, the first remaining anchor whose href contains the
// binding's port literal is rewritten. Bindings are independent: a miss is
// skipped silently and does not affect the others. Running Sync twice on an
// unchanged document yields the same hrefs.
func (d *Directory) Sync(doc ports.Document, bindings []Binding) SyncReport {
	report := SyncReport{Host: d.host}
	anchors := doc.Anchors()

	var legacy []ports.Anchor
	for _, a := range anchors {
		name, ok := a.Attr(ServiceAttr)
		if !ok {
			legacy = append(legacy, a)
			continue
		}
		u := d.ServiceURL(name)
		if u == "" {
			report.Skipped = append(report.Skipped, name)
			continue
		}
		report.Rewritten = append(report.Rewritten, d.rewrite(a, name, u))
	}

	for _, b := range bindings {
		if b.Port == "" {
			continue
		}
		a := firstHrefContaining(legacy, b.Port)
		if a == nil {
			continue
		}
		u := d.ServiceURL(b.Service)
		if u == "" {
			continue
		}
		report.Rewritten = append(report.Rewritten, d.rewrite(a, b.Service, u))
	}

	d.logger.Info("service links updated", "host", d.host, "rewritten", len(report.Rewritten))
	return report
}

func (d *Directory) rewrite(a ports.Anchor, service, u string) Rewrite {
	from := a.Href()
	a.SetHref(u)
	d.observer.ObserveRewrite(service)
	return Rewrite{Service: service, From: from, To: u}
}

func firstHrefContaining(anchors []ports.Anchor, literal string) ports.Anchor {
	for _, a := range anchors {
		if strings.Contains(a.Href(), literal) {
			return a
		}
	}
	return nil
}
