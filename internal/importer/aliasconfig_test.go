package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAliasOverrides(t *testing.T) {
	path := writeOverrides(t, `{"price": ["Quoted", "Agreed Price"], "name": ["Householder"]}`)

	overrides, err := LoadAliasOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Quoted", "Agreed Price"}, overrides[FieldPrice])
	assert.Equal(t, []string{"Householder"}, overrides[FieldName])
}

func TestLoadAliasOverridesRejectsUnknownField(t *testing.T) {
	path := writeOverrides(t, `{"colour": ["Blue"]}`)

	_, err := LoadAliasOverrides(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoadAliasOverridesRejectsEmptyList(t *testing.T) {
	path := writeOverrides(t, `{"price": []}`)

	_, err := LoadAliasOverrides(path)
	require.Error(t, err)
}

func TestLoadAliasOverridesMissingFile(t *testing.T) {
	_, err := LoadAliasOverrides(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
