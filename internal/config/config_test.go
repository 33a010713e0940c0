package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFiles(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(noEnvFiles(t))
	require.NoError(t, err)

	assert.Equal(t, "https://dev.api.infigon.app", c.Catalog.BaseURL)
	assert.Empty(t, c.Catalog.BearerToken)
	assert.Equal(t, time.Duration(0), c.Catalog.HTTPTimeout)
	assert.Equal(t, "kc", c.Sync.Profile)
	assert.Equal(t, "failed.txt", c.Sync.FailedLog)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 22, c.SFTP.Port)
	assert.Equal(t, "/inbound", c.SFTP.Dir)
	assert.True(t, c.SFTP.InsecureIgnoreHostKey)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CATALOG_BASE_URL", "https://api.example.com")
	t.Setenv("CATALOG_BEARER_TOKEN", "tok")
	t.Setenv("CATALOG_HTTP_TIMEOUT", "30s")
	t.Setenv("SYNC_PROFILE", "studyreach")
	t.Setenv("SFTP_PORT", "2222")
	t.Setenv("SFTP_INSECURE_IGNORE_HOSTKEY", "false")
	t.Setenv("SFTP_KNOWN_HOSTS", "/etc/ssh/known_hosts")

	c, err := Load(noEnvFiles(t))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", c.Catalog.BaseURL)
	assert.Equal(t, "tok", c.Catalog.BearerToken)
	assert.Equal(t, 30*time.Second, c.Catalog.HTTPTimeout)
	assert.Equal(t, "studyreach", c.Sync.Profile)

	sc := c.SFTPConfig()
	assert.Equal(t, 2222, sc.Port)
	assert.False(t, sc.InsecureIgnoreHostKey)
	assert.Equal(t, "/etc/ssh/known_hosts", sc.KnownHostsPath)
	assert.Equal(t, "/inbound", sc.RemoteDir)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("SYNC_FAILED_LOG=out/failed.txt\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SYNC_FAILED_LOG") })

	n, err := LoadEnv([]string{file, filepath.Join(dir, ".env.local")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	c, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "out/failed.txt", c.Sync.FailedLog)
}

func TestLoadValidation(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{"bad url", "CATALOG_BASE_URL", "not a url"},
		{"bad level", "LOG_LEVEL", "loud"},
		{"bad port", "SFTP_PORT", "70000"},
		{"bad timeout", "CATALOG_HTTP_TIMEOUT", "soon"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := Load(noEnvFiles(t))
			assert.Error(t, err)
		})
	}
}
