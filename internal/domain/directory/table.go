// Package directory maps logical service names to reachable URLs.
//
// A Directory joins an immutable port Table with a Host and produces
// http://<host>:<port> URLs on demand. Sync applies those URLs to the
// anchor elements of a dashboard page. Nothing here touches the network
// or global state; the host and table are injected by the caller.
package directory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownService is returned when a name is not in the table.
	ErrUnknownService = errors.New("service not found")
	// ErrInvalidPort is returned for ports outside 1-65535.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidService is returned for an empty service name.
	ErrInvalidService = errors.New("invalid service name")
)

// defaultPorts is the fixed port contract. Dashboards embed these exact
// numbers in their placeholder links.
var defaultPorts = map[string]int{
	"NGINX":           9080,
	"APACHE":          9081,
	"BUSYBOX":         9082,
	"MEMCACHED":       9083,
	"APP":             3000,
	"ALPINE":          9084,
	"REDIS":           9085,
	"POSTGRES":        9086,
	"MONGO":           9087,
	"MYSQL":           9088,
	"RABBITMQ":        9089,
	"ELASTICSEARCH":   9091,
	"GRAFANA":         3001,
	"PROMETHEUS":      9093,
	"JENKINS":         8001,
	"GITLAB":          9092,
	"DOCKER_REGISTRY": 5000,
	"PORTAINER":       8002,
	"VAULT":           8200,
	"CONSUL":          8500,
	"ETCD":            2379,
}

// Table is an immutable service name -> port mapping. Keys are stored
// upper-cased; lookups are case-insensitive.
type Table struct {
	ports map[string]int
}

// DefaultTable returns the built-in port table.
func DefaultTable() Table {
	t, err := NewTable(defaultPorts)
	if err != nil {
		panic(err) // literal table is validated by tests
	}
	return t
}

// NewTable validates and copies ports into a Table.
func NewTable(ports map[string]int) (Table, error) {
	out := make(map[string]int, len(ports))
	for name, port := range ports {
		if strings.TrimSpace(name) == "" {
			return Table{}, ErrInvalidService
		}
		key := strings.ToUpper(strings.TrimSpace(name))
		if port < 1 || port > 65535 {
			return Table{}, fmt.Errorf("%s=%d: %w", key, port, ErrInvalidPort)
		}
		out[key] = port
	}
	return Table{ports: out}, nil
}

// Port returns the port registered for name. Only case is folded; a name
// with surrounding whitespace is a different, unknown service.
func (t Table) Port(name string) (int, bool) {
	port, ok := t.ports[strings.ToUpper(name)]
	return port, ok
}

// Key returns the stored, upper-cased name that name resolves to.
func (t Table) Key(name string) (string, bool) {
	key := strings.ToUpper(name)
	_, ok := t.ports[key]
	return key, ok
}

// Names returns all service names, sorted.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.ports))
	for name := range t.ports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of services.
func (t Table) Len() int {
	return len(t.ports)
}
