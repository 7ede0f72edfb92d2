// Package servicefile loads an optional TOML file that replaces the
// built-in port table and link bindings. The file is read once at startup;
// the resulting table is immutable like the built-in one.
//
//	[services]
//	NGINX = 9080
//
//	[[links]]
//	port = "9080"
//	service = "nginx"
package servicefile

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/corey/svcdash/internal/domain/directory"
)

// File is the on-disk layout.
type File struct {
	Services map[string]int      `toml:"services"`
	Links    []directory.Binding `toml:"links"`
}

// Load reads path and returns the table and bindings it declares. A missing
// [services] section keeps the default table. A missing links list keeps the
// default bindings whose service is still in the table.
func Load(path string) (directory.Table, []directory.Binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return directory.Table{}, nil, fmt.Errorf("read services file: %w", err)
	}
	return Decode(data)
}

// Decode parses TOML data. See Load.
func Decode(data []byte) (directory.Table, []directory.Binding, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return directory.Table{}, nil, fmt.Errorf("decode services file: %w", err)
	}

	table := directory.DefaultTable()
	if f.Services != nil {
		t, err := directory.NewTable(f.Services)
		if err != nil {
			return directory.Table{}, nil, fmt.Errorf("services: %w", err)
		}
		table = t
	}

	if f.Links == nil {
		return table, defaultBindingsFor(table), nil
	}
	for i, b := range f.Links {
		if b.Port == "" {
			return directory.Table{}, nil, fmt.Errorf("links[%d]: empty port", i)
		}
		if _, ok := table.Port(b.Service); !ok {
			return directory.Table{}, nil, fmt.Errorf("links[%d] %q: %w", i, b.Service, directory.ErrUnknownService)
		}
	}

	return table, f.Links, nil
}

// defaultBindingsFor keeps the default bindings whose service is in table.
func defaultBindingsFor(table directory.Table) []directory.Binding {
	var out []directory.Binding
	for _, b := range directory.DefaultBindings() {
		if _, ok := table.Port(b.Service); ok {
			out = append(out, b)
		}
	}
	return out
}
