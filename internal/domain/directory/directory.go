package directory

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
)

// DefaultHost is used when no hostname can be resolved.
const DefaultHost = "localhost"

// scheme is fixed; the dashboard services are plain HTTP.
const scheme = "http"

// ResolveHost returns hostname, or DefaultHost when it is empty.
// There is no environment override: the only input is the hostname the
// page (or request) was reached on.
func ResolveHost(hostname string) string {
	if h := strings.TrimSpace(hostname); h != "" {
		return h
	}
	return DefaultHost
}

// Observer receives lookup and rewrite events, e.g. for metrics.
type Observer interface {
	ObserveLookup(service string, found bool)
	ObserveRewrite(service string)
}

type nopObserver struct{}

func (nopObserver) ObserveLookup(string, bool) {}
func (nopObserver) ObserveRewrite(string) {}

// Entry is one resolved row of the directory.
type Entry struct {
	Name string `json:"name"`
	Port int    `json:"port"`
	URL  string `json:"url"`
}

// Directory resolves service names against a Table for a single Host.
// It is immutable; use WithHost to derive a directory for another host.
type Directory struct {
	table    Table
	host     string
	logger   *slog.Logger
	observer Observer
}

// Option configures a Directory.
type Option func(*Directory)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Directory) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithObserver sets the lookup/rewrite observer.
func WithObserver(o Observer) Option {
	return func(d *Directory) {
		if o != nil {
			d.observer = o
		}
	}
}

// New creates a Directory for host. An empty host resolves to DefaultHost.
func New(table Table, host string, opts ...Option) *Directory {
	d := &Directory{
		table:    table,
		host:     ResolveHost(host),
		logger:   slog.Default(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithHost returns a copy of d bound to host.
func (d *Directory) WithHost(host string) *Directory {
	cp := *d
	cp.host = ResolveHost(host)
	return &cp
}

// Host returns the host URLs are built against.
func (d *Directory) Host() string {
	return d.host
}

// Table returns the underlying port table.
func (d *Directory) Table() Table {
	return d.table
}

// Resolve returns the canonical entry for name, or an error wrapping
// ErrUnknownService. It does not log.
func (d *Directory) Resolve(name string) (Entry, error) {
	port, ok := d.table.Port(name)
	d.observer.ObserveLookup(name, ok)
	if !ok {
		return Entry{}, fmt.Errorf("%q: %w", name, ErrUnknownService)
	}
	key, _ := d.table.Key(name)
	return Entry{Name: key, Port: port, URL: d.url(port)}, nil
}

// Lookup returns the URL for name, or an error wrapping ErrUnknownService.
// It does not log.
func (d *Directory) Lookup(name string) (string, error) {
	e, err := d.Resolve(name)
	if err != nil {
		return "", err
	}
	return e.URL, nil
}

// ServiceURL returns http://<host>:<port> for name. Unknown names log one
// error diagnostic and return "", which callers treat as unresolvable.
func (d *Directory) ServiceURL(name string) string {
	u, err := d.Lookup(name)
	if err != nil {
		d.logger.Error("service not found", "service", name)
		return ""
	}
	return u
}

// Entries returns every service with its port and URL, sorted by name.
func (d *Directory) Entries() []Entry {
	names := d.table.Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		port, _ := d.table.Port(name)
		entries = append(entries, Entry{Name: name, Port: port, URL: d.url(port)})
	}
	return entries
}

func (d *Directory) url(port int) string {
	return scheme + "://" + net.JoinHostPort(d.host, strconv.Itoa(port))
}
