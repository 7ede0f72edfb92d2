package servicefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/svcdash/internal/domain/directory"
)

func TestDecode_Empty(t *testing.T) {
	table, bindings, err := Decode([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, directory.DefaultTable().Names(), table.Names())
	assert.Equal(t, directory.DefaultBindings(), bindings)
}

func TestDecode_CustomTableAndLinks(t *testing.T) {
	data := []byte(`
[services]
web = 8080
metrics = 9100

[[links]]
port = "8080"
service = "web"
`)
	table, bindings, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"METRICS", "WEB"}, table.Names())
	port, ok := table.Port("Web")
	assert.True(t, ok)
	assert.Equal(t, 8080, port)
	assert.Equal(t, []directory.Binding{{Port: "8080", Service: "web"}}, bindings)
}

func TestDecode_LinksAgainstDefaultTable(t *testing.T) {
	data := []byte(`
[[links]]
port = "9085"
service = "redis"
`)
	table, bindings, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 21, table.Len())
	assert.Equal(t, []directory.Binding{{Port: "9085", Service: "redis"}}, bindings)
}

func TestDecode_UnknownLinkService(t *testing.T) {
	data := []byte(`
[[links]]
port = "1234"
service = "ghost"
`)
	_, _, err := Decode(data)
	assert.True(t, errors.Is(err, directory.ErrUnknownService))
}

func TestDecode_InvalidPort(t *testing.T) {
	_, _, err := Decode([]byte("[services]\nweb = 70000\n"))
	assert.True(t, errors.Is(err, directory.ErrInvalidPort))
}

func TestDecode_EmptyLinkPort(t *testing.T) {
	_, _, err := Decode([]byte("[[links]]\nservice = \"nginx\"\n"))
	assert.Error(t, err)
}

func TestDecode_Malformed(t *testing.T) {
	_, _, err := Decode([]byte("[services\n"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services.toml")
	require.NoError(t, os.WriteFile(path, []byte("[services]\nAPP = 3000\n"), 0644))

	table, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDecode_DefaultBindingsFilteredByTable(t *testing.T) {
	_, bindings, err := Decode([]byte("[services]\nAPP = 3000\nREDIS = 9085\n"))
	require.NoError(t, err)
	assert.Equal(t, []directory.Binding{{Port: "3000", Service: "app"}}, bindings)
}
