package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvUserName, "Alex")
	t.Setenv(EnvUserEmail, "alex@example.com")
	t.Setenv(EnvStoreDriver, "mysql")
	t.Setenv(EnvStoreDSN, "user:pw@tcp(db:3306)/projinsight")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "Alex", cfg.Resume.UserName)
	assert.Equal(t, "alex@example.com", cfg.Resume.UserEmail)
	assert.Equal(t, "mysql", cfg.Store.Driver)
	assert.Equal(t, "user:pw@tcp(db:3306)/projinsight", cfg.Store.DSN)
}

func TestApplyEnvIgnoresBlank(t *testing.T) {
	t.Setenv(EnvUserName, "   ")
	t.Setenv(EnvStoreDriver, "")

	cfg := DefaultConfig()
	cfg.Resume.UserName = "From File"
	cfg.ApplyEnv()

	assert.Equal(t, "From File", cfg.Resume.UserName)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, EnvUserName+"=Robin\n"+EnvUserEmail+"=robin@example.com\n")

	// Setenv registers the restore; the name starts out unset.
	t.Setenv(EnvUserName, "")
	require.NoError(t, os.Unsetenv(EnvUserName))
	t.Setenv(EnvUserEmail, "preset@example.com")

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), envFile))

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	assert.Equal(t, "Robin", cfg.Resume.UserName)
	assert.Equal(t, "preset@example.com", cfg.Resume.UserEmail)
}
