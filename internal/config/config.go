package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = "present"
	envPrefix  = "PRESENT"

	// legacyStoreEnv is the connection string variable earlier deployments set.
	legacyStoreEnv = "MONGODB_URI"
)

const (
	KeyStoreURI              = "store.uri"
	KeyStoreConnectTimeout   = "store.connect_timeout"
	KeyStoreOperationTimeout = "store.operation_timeout"
	KeyServerAddr            = "server.addr"
	KeyServerAllowedOrigin   = "server.allowed_origin"
	KeyServerAllowCreds      = "server.allow_credentials"
	KeyAPIURL                = "api.url"
	KeyAPITimeout            = "api.timeout"
	KeyUserID                = "user.id"
	KeyLogLevel              = "log.level"
	KeyLogFormat             = "log.format"
)

var ErrStoreNotConfigured = errors.New("store.uri is not configured (set PRESENT_STORE_URI or store.uri in config.toml)")

type Config struct {
	Store  StoreConfig
	Server ServerConfig
	API    APIConfig
	UserID string
	Log    LogConfig
	// File is the config file that was read, empty when none was found.
	File string
}

type StoreConfig struct {
	URI              string
	ConnectTimeout   time.Duration
	OperationTimeout time.Duration
}

type ServerConfig struct {
	Addr             string
	AllowedOrigin    string
	AllowCredentials bool
}

type APIConfig struct {
	URL     string
	Timeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads config.toml (from v's explicit config file or the default search
// path), environment overrides and defaults.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)
	v.SetConfigType(configType)
	if v.ConfigFileUsed() == "" {
		v.SetConfigName(configName)
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Store: StoreConfig{
			URI:              strings.TrimSpace(v.GetString(KeyStoreURI)),
			ConnectTimeout:   v.GetDuration(KeyStoreConnectTimeout),
			OperationTimeout: v.GetDuration(KeyStoreOperationTimeout),
		},
		Server: ServerConfig{
			Addr:             v.GetString(KeyServerAddr),
			AllowedOrigin:    v.GetString(KeyServerAllowedOrigin),
			AllowCredentials: v.GetBool(KeyServerAllowCreds),
		},
		API: APIConfig{
			URL:     strings.TrimSpace(v.GetString(KeyAPIURL)),
			Timeout: v.GetDuration(KeyAPITimeout),
		},
		UserID: strings.TrimSpace(v.GetString(KeyUserID)),
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		File: v.ConfigFileUsed(),
	}
	if cfg.Store.URI == "" {
		cfg.Store.URI = strings.TrimSpace(os.Getenv(legacyStoreEnv))
	}

	if cfg.Store.ConnectTimeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive", KeyStoreConnectTimeout)
	}
	if cfg.Store.OperationTimeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive", KeyStoreOperationTimeout)
	}
	if cfg.API.Timeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive", KeyAPITimeout)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyStoreURI, "")
	v.SetDefault(KeyStoreConnectTimeout, 5*time.Second)
	v.SetDefault(KeyStoreOperationTimeout, 10*time.Second)
	v.SetDefault(KeyServerAddr, "127.0.0.1:3000")
	v.SetDefault(KeyServerAllowedOrigin, "*")
	v.SetDefault(KeyServerAllowCreds, true)
	v.SetDefault(KeyAPIURL, "http://127.0.0.1:3000")
	v.SetDefault(KeyAPITimeout, 30*time.Second)
	v.SetDefault(KeyUserID, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

func searchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, configDir))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(homeDir, ".config", configDir))
	}
	return dirs
}

// StoreKind is the backend named by a store URI.
type StoreKind string

const (
	StoreSQLite StoreKind = "sqlite"
	StoreTOML   StoreKind = "toml"
)

// ParseStoreURI splits sqlite://<path> or toml://<path> into its backend and path.
func ParseStoreURI(uri string) (StoreKind, string, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", "", ErrStoreNotConfigured
	}

	scheme, path, ok := strings.Cut(uri, "://")
	if !ok {
		return "", "", fmt.Errorf("store uri %q: missing scheme (want sqlite:// or toml://)", uri)
	}
	if strings.TrimSpace(path) == "" {
		return "", "", fmt.Errorf("store uri %q: missing path", uri)
	}
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	switch StoreKind(strings.ToLower(scheme)) {
	case StoreSQLite:
		return StoreSQLite, path, nil
	case StoreTOML:
		return StoreTOML, path, nil
	default:
		return "", "", fmt.Errorf("store uri %q: unsupported scheme %q (want sqlite or toml)", uri, scheme)
	}
}
