package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.env")
	content := "# comment line\nTEST_ENV_LOADER_A=alpha\nTEST_ENV_LOADER_B=\"quoted\"\n\nnot a pair\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("TEST_ENV_LOADER_C", "preset")
	os.Unsetenv("TEST_ENV_LOADER_A")
	os.Unsetenv("TEST_ENV_LOADER_B")

	LoadEnvFromFile(path, filepath.Join(dir, "missing.env"))

	assert.Equal(t, "alpha", os.Getenv("TEST_ENV_LOADER_A"))
	assert.Equal(t, "quoted", os.Getenv("TEST_ENV_LOADER_B"))
	// Existing vars are never overridden.
	assert.Equal(t, "preset", os.Getenv("TEST_ENV_LOADER_C"))
}

func TestLoadEnvFromFile_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	assert.NoError(t, os.WriteFile(path, []byte("TEST_ENV_LOADER_D=from_file\n"), 0o644))

	t.Setenv("TEST_ENV_LOADER_D", "from_os")
	LoadEnvFromFile(path)
	assert.Equal(t, "from_os", os.Getenv("TEST_ENV_LOADER_D"))
}
