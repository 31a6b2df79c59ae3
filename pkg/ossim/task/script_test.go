package task

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "my_task.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadScript_ValidDocument(t *testing.T) {
	path := writeScript(t, `{"name":"custom","yields":["a","b"],"return":"z"}`)
	name, tk, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", name)
	yields, ret := drain(t, tk)
	assert.Equal(t, 2, yields)
	assert.Equal(t, "z", ret)
}

func TestLoadScript_NameDefaultsToFileStem(t *testing.T) {
	path := writeScript(t, `{"yields":["a"],"return":"done"}`)
	name, _, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "my_task", name)
}

func TestLoadScript_MalformedJSON(t *testing.T) {
	path := writeScript(t, `{not json`)
	_, _, err := LoadScript(path)
	assert.ErrorIs(t, err, ErrScriptDecode)
}

func TestLoadScript_Empty(t *testing.T) {
	path := writeScript(t, `{}`)
	_, _, err := LoadScript(path)
	assert.ErrorIs(t, err, ErrScriptEmpty)
}

func TestIsScriptPath(t *testing.T) {
	assert.True(t, IsScriptPath("foo.json"))
	assert.False(t, IsScriptPath("hello"))
}

func TestLoad_DispatchesBuiltinVsScript(t *testing.T) {
	r := NewRegistry()
	name, tk, err := Load(r, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", name)
	assert.NotNil(t, tk)

	path := writeScript(t, `{"yields":["x"],"return":"y"}`)
	name, tk, err = Load(r, path)
	require.NoError(t, err)
	assert.Equal(t, "my_task", name)
	assert.NotNil(t, tk)
}
