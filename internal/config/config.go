package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/vango-dev/rangeui/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "rangeui.json"

	// EnvPrefix prefixes environment overrides (RANGEUI_SERVER_PORT, ...).
	EnvPrefix = "RANGEUI"

	// DefaultPort is the default live server port.
	DefaultPort = 3000

	// DefaultHost is the default live server host.
	DefaultHost = "localhost"

	// DefaultMetricsPath is the default Prometheus scrape path.
	DefaultMetricsPath = "/metrics"
)

// Config represents the complete rangeui.json configuration.
type Config struct {
	// Server contains live preview server configuration.
	Server ServerConfig `json:"server"`

	// Render contains HTML output configuration.
	Render RenderConfig `json:"render"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics"`

	// Log contains logger configuration.
	Log LogConfig `json:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains live preview server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host"`

	// Port is the port to listen on.
	Port int `json:"port"`

	// ReadTimeout bounds reading a request's headers.
	ReadTimeout time.Duration `json:"readTimeout"`

	// PingInterval is the websocket keepalive period.
	PingInterval time.Duration `json:"pingInterval"`
}

// RenderConfig controls how host documents are serialized.
type RenderConfig struct {
	// Pretty indents HTML output.
	Pretty bool `json:"pretty"`

	// NodeIDs tags interactive elements with data-node ids.
	NodeIDs bool `json:"nodeIDs"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled registers engine metrics and serves them on Path.
	Enabled bool `json:"enabled"`

	// Path is the scrape path.
	Path string `json:"path"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`

	// Format is text or json.
	Format string `json:"format"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			ReadTimeout:  10 * time.Second,
			PingInterval: 30 * time.Second,
		},
		Render: RenderConfig{
			NodeIDs: true,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Path:      DefaultMetricsPath,
			Namespace: "rangeui",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads rangeui.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile loads a configuration file. Values missing from the file keep
// their defaults; RANGEUI_* environment variables override both.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// LoadOrDefault loads rangeui.json from dir if it exists, and otherwise
// returns the defaults with environment overrides applied.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.HasCode(err, "E141") {
		return decode(newViper())
	}
	return cfg, err
}

// newViper returns a viper instance seeded with the defaults so that every
// key can be overridden from the environment.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := New()
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.readTimeout", d.Server.ReadTimeout)
	v.SetDefault("server.pingInterval", d.Server.PingInterval)
	v.SetDefault("render.pretty", d.Render.Pretty)
	v.SetDefault("render.nodeIDs", d.Render.NodeIDs)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.path", d.Metrics.Path)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to decode configuration: " + err.Error())
	}
	return cfg, nil
}

// Path returns the file the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E121").
			WithDetail("server.port must be between 0 and 65535")
	}
	if c.Server.PingInterval <= 0 {
		return errors.New("E121").
			WithDetail("server.pingInterval must be positive")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E121").
			WithDetail("metrics.path must start with /")
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E121").
			WithDetail("log.level must be one of debug, info, warn, error")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("E121").
			WithDetail("log.format must be text or json")
	}
	return nil
}

// Address returns the live server listen address.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// URL returns the live server URL.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// SlogLevel returns the configured level. Unknown levels map to info.
func (l LogConfig) SlogLevel() slog.Level {
	level, _ := parseLevel(l.Level)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Exists reports whether dir contains rangeui.json.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from dir looking for rangeui.json.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No " + ConfigFileName + " found in any parent directory")
		}
		dir = parent
	}
}
