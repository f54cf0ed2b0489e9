package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))
	t.Setenv("MONGODB_URI", "")
	for _, key := range []string{"STORE_URI", "STORE_CONNECT_TIMEOUT", "SERVER_ADDR", "USER_ID", "LOG_LEVEL", "API_URL"} {
		t.Setenv("PRESENT_"+key, "")
		require.NoError(t, os.Unsetenv("PRESENT_"+key))
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Empty(t, cfg.Store.URI)
	assert.Equal(t, 5*time.Second, cfg.Store.ConnectTimeout)
	assert.Equal(t, 10*time.Second, cfg.Store.OperationTimeout)
	assert.Equal(t, "127.0.0.1:3000", cfg.Server.Addr)
	assert.Equal(t, "*", cfg.Server.AllowedOrigin)
	assert.True(t, cfg.Server.AllowCredentials)
	assert.Equal(t, "http://127.0.0.1:3000", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.File)
}

func TestLoadReadsXDGConfigFile(t *testing.T) {
	home := isolateEnv(t)

	dir := filepath.Join(home, "xdg", "present")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[store]
uri = "sqlite:///var/lib/present/present.db"
connect_timeout = "2s"

[server]
addr = "0.0.0.0:8080"
allow_credentials = false

[user]
id = "u-42"
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "sqlite:///var/lib/present/present.db", cfg.Store.URI)
	assert.Equal(t, 2*time.Second, cfg.Store.ConnectTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.False(t, cfg.Server.AllowCredentials)
	assert.Equal(t, "u-42", cfg.UserID)
	assert.Equal(t, filepath.Join(dir, "config.toml"), cfg.File)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := isolateEnv(t)

	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[user]\nid = \"from-file\"\n"), 0o600))
	t.Setenv("PRESENT_USER_ID", "from-env")
	t.Setenv("PRESENT_STORE_URI", "toml:///tmp/presentations.toml")

	v := viper.New()
	v.SetConfigFile(path)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.UserID)
	assert.Equal(t, "toml:///tmp/presentations.toml", cfg.Store.URI)
	assert.Equal(t, path, cfg.File)
}

func TestLoadFallsBackToLegacyStoreVariable(t *testing.T) {
	isolateEnv(t)
	t.Setenv("MONGODB_URI", "sqlite:///srv/present.db")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "sqlite:///srv/present.db", cfg.Store.URI)
}

func TestLoadRejectsBrokenConfig(t *testing.T) {
	home := isolateEnv(t)

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(home, "broken.toml")
		require.NoError(t, os.WriteFile(path, []byte("[store\n"), 0o600))

		v := viper.New()
		v.SetConfigFile(path)
		_, err := Load(v)
		require.ErrorContains(t, err, "read config file")
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		t.Setenv("PRESENT_STORE_CONNECT_TIMEOUT", "0s")
		_, err := Load(viper.New())
		require.ErrorContains(t, err, KeyStoreConnectTimeout)
	})
}

func TestParseStoreURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		wantKind StoreKind
		wantPath string
		wantErr  string
	}{
		{name: "sqlite absolute", uri: "sqlite:///var/lib/present.db", wantKind: StoreSQLite, wantPath: "/var/lib/present.db"},
		{name: "sqlite relative", uri: "sqlite://data/present.db", wantKind: StoreSQLite, wantPath: "data/present.db"},
		{name: "toml", uri: "TOML:///tmp/p.toml", wantKind: StoreTOML, wantPath: "/tmp/p.toml"},
		{name: "empty", uri: "  ", wantErr: "store.uri is not configured"},
		{name: "no scheme", uri: "/tmp/present.db", wantErr: "missing scheme"},
		{name: "no path", uri: "sqlite://", wantErr: "missing path"},
		{name: "mongodb", uri: "mongodb://localhost:27017/present", wantErr: "unsupported scheme"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kind, path, err := ParseStoreURI(tc.uri)
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, kind)
			assert.Equal(t, tc.wantPath, path)
		})
	}
}

func TestParseStoreURIExpandsHome(t *testing.T) {
	home := isolateEnv(t)

	kind, path, err := ParseStoreURI("sqlite://~/present/present.db")
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, kind)
	assert.Equal(t, filepath.Join(home, "present", "present.db"), path)
}
