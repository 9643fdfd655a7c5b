package config

import (
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIKey, EnvHost, EnvSchemasPath} {
		t.Setenv(k, "")
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/ameax/import.hcl", []byte(`
api_key      = "file-key"
host         = "https://acme.ameax.de"
schemas_path = "/etc/ameax/schemas"
timeout      = "10s"
tls_verify   = false
log_level    = "debug"
`), 0o644))

	cfg, err := LoadFile(fs, "/etc/ameax/import.hcl")
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "https://acme.ameax.de", cfg.Host)
	assert.Equal(t, "/etc/ameax/schemas", cfg.SchemasPath)
	require.NotNil(t, cfg.TLSVerify)
	assert.False(t, *cfg.TLSVerify)
	assert.Equal(t, hclog.Debug, cfg.Level())

	cc, err := cfg.ClientConfig(hclog.NewNullLogger(), fs)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cc.Timeout)
	assert.Equal(t, "https://acme.ameax.de/rest-api/imports", cc.ImportsURL())
	assert.NoError(t, cc.Validate())
}

func TestLoadFile_Defaults(t *testing.T) {
	clearEnv(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "min.hcl", []byte(`api_key = "k"`), 0o644))

	cfg, err := LoadFile(fs, "min.hcl")
	require.NoError(t, err)

	assert.Equal(t, "https://your-database.ameax.de", cfg.Host)
	assert.Equal(t, "30s", cfg.Timeout)
	assert.True(t, *cfg.TLSVerify)
	assert.Equal(t, hclog.Info, cfg.Level())
	assert.Empty(t, cfg.SchemasPath)
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "c.hcl", []byte(`
api_key = "file-key"
host    = "https://file.ameax.de"
`), 0o644))

	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvHost, "https://env.ameax.de")
	t.Setenv(EnvSchemasPath, "/env/schemas")

	cfg, err := LoadFile(fs, "c.hcl")
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "https://env.ameax.de", cfg.Host)
	assert.Equal(t, "/env/schemas", cfg.SchemasPath)

	// Without a file, the environment alone is enough.
	cfg, err = LoadFile(fs, "")
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoadFile_Errors(t *testing.T) {
	clearEnv(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.hcl", []byte(`api_key = `), 0o644))
	require.NoError(t, afero.WriteFile(fs, "unknown.hcl", []byte(`colour = "red"`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "timeout.hcl", []byte(`timeout = "soon"`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "level.hcl", []byte(`log_level = "loud"`), 0o644))

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "missing file", path: "nope.hcl", wantErr: "failed to read config file"},
		{name: "syntax", path: "bad.hcl", wantErr: "failed to load config"},
		{name: "unknown attribute", path: "unknown.hcl", wantErr: "failed to load config"},
		{name: "timeout", path: "timeout.hcl", wantErr: `invalid timeout "soon"`},
		{name: "log level", path: "level.hcl", wantErr: `invalid log_level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(fs, tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv_IgnoresEmptyValues(t *testing.T) {
	cfg := &Config{APIKey: "file"}
	applyEnv(cfg, func(k string) (string, bool) { return "", true })
	assert.Equal(t, "file", cfg.APIKey)
}
