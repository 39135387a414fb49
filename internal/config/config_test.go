package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inEmptyDir runs the test from a directory without config.yaml or .env.
func inEmptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func Test_Load_Defaults(t *testing.T) {
	// given
	inEmptyDir(t)
	// when
	cfg, err := Load()
	// then
	require.NoError(t, err)
	assert.Equal(t, "123", cfg.Auth.Secret)
	assert.False(t, cfg.Reports.Enabled)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTPServer.Timeout.Read)
	assert.Equal(t, 5*time.Second, cfg.Shutdown.Timeout)
	assert.False(t, cfg.PProf.Enabled)
	assert.Equal(t, "127.0.0.1:6060", cfg.PProf.Addr)
}

func Test_Load_EnvOverrides(t *testing.T) {
	// given
	inEmptyDir(t)
	t.Setenv("STOREKEEPER_AUTH_SECRET", "s3cret")
	t.Setenv("STOREKEEPER_REPORTS_ENABLED", "true")
	t.Setenv("STOREKEEPER_SERVER_PORT", "9090")
	t.Setenv("STOREKEEPER_SHUTDOWN_TIMEOUT", "12s")
	t.Setenv("STOREKEEPER_PPROF_ENABLED", "true")
	t.Setenv("STOREKEEPER_PPROF_ADDR", "0.0.0.0:7070")
	// when
	cfg, err := Load()
	// then
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Auth.Secret)
	assert.True(t, cfg.Reports.Enabled)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, 12*time.Second, cfg.Shutdown.Timeout)
	assert.True(t, cfg.PProf.Enabled)
	assert.Equal(t, "0.0.0.0:7070", cfg.PProf.Addr)
}

func Test_Load_FilePriority(t *testing.T) {
	// given
	dir := inEmptyDir(t)
	yaml := "auth:\n  secret: from-yaml\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STOREKEEPER_LOG_LEVEL=error\n"), 0o600))
	// when
	cfg, err := Load()
	// then
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", cfg.Auth.Secret)
	assert.Equal(t, "error", cfg.Log.Level, ".env wins over config.yaml")
}

func Test_Load_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "Error - unknown log level",
			env:  map[string]string{"STOREKEEPER_LOG_LEVEL": "loud"},
		},
		{
			name: "Error - bad port with reports enabled",
			env:  map[string]string{"STOREKEEPER_REPORTS_ENABLED": "true", "STOREKEEPER_SERVER_PORT": "70000"},
		},
		{
			name: "Error - non positive shutdown timeout",
			env:  map[string]string{"STOREKEEPER_SHUTDOWN_TIMEOUT": "0s"},
		},
		{
			name: "Error - pprof enabled without address",
			env:  map[string]string{"STOREKEEPER_PPROF_ENABLED": "true", "STOREKEEPER_PPROF_ADDR": " "},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			inEmptyDir(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			// when
			_, err := Load()
			// then
			assert.Error(t, err)
		})
	}
}

func Test_Config_Validate_Secret(t *testing.T) {
	testCases := []struct {
		name        string
		secret      string
		expectError bool
	}{
		{name: "Success - plain secret", secret: "123"},
		{name: "Error - empty secret", secret: "", expectError: true},
		{name: "Error - padded secret", secret: " 123 ", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Auth: AuthConfig{Secret: tc.secret}}
			cfg.Shutdown.Timeout = time.Second

			err := cfg.Validate()

			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_Config_String_MasksSecret(t *testing.T) {
	cfg := &Config{Auth: AuthConfig{Secret: "topsecret"}}

	s := cfg.String()

	assert.NotContains(t, s, "topsecret")
	assert.Contains(t, s, "auth.secret: ****")
}
