package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// PathEnv overrides the config file location.
	PathEnv = "TRAVELSHELL_CONFIG"
	// LogPathEnv overrides Log.Path.
	LogPathEnv = "TRAVELSHELL_LOG_PATH"
	// LogLevelEnv overrides Log.Level.
	LogLevelEnv = "TRAVELSHELL_LOG_LEVEL"
	// ServiceNameEnv is the standard OTel service name variable.
	ServiceNameEnv = "OTEL_SERVICE_NAME"
	// OTLPEndpointEnv enables trace export when set.
	OTLPEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// Config holds all travelshell configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	UI        UIConfig        `yaml:"ui"`
	Profile   ProfileConfig   `yaml:"profile"`
	Map       MapConfig       `yaml:"map"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LogConfig configures the zap logger. The terminal belongs to the UI, so logs go to a file.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// UIConfig configures the shell.
type UIConfig struct {
	AltScreen bool `yaml:"alt_screen"`
	// Labels maps lowercase target names ("home", "map", ...) to nav bar labels.
	Labels map[string]string `yaml:"labels"`
}

// ProfileConfig is shown on the Profile screen.
type ProfileConfig struct {
	Name        string   `yaml:"name"`
	Preferences []string `yaml:"preferences"`
}

// MapConfig configures the Map screen.
type MapConfig struct {
	// RegionsFile is a YAML list of regions; empty uses the built-in list.
	RegionsFile string `yaml:"regions_file"`
}

// TelemetryConfig configures tracing.
type TelemetryConfig struct {
	ServiceName  string `yaml:"service_name"`
	OTLPEndpoint string `yaml:"otlp_endpoint"` // empty disables export
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Path:  defaultLogPath(),
			Level: "info",
		},
		UI: UIConfig{
			AltScreen: true,
			Labels: map[string]string{
				"home":    "홈",
				"map":     "지도",
				"journey": "여정",
				"diary":   "일기",
				"profile": "프로필",
			},
		},
		Profile: ProfileConfig{
			Name:        "traveler",
			Preferences: []string{"nature", "food", "history"},
		},
		Telemetry: TelemetryConfig{
			ServiceName: "travelshell",
		},
	}
}

// DefaultPath returns the config file location: $TRAVELSHELL_CONFIG, else
// $XDG_CONFIG_HOME/travelshell/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "travelshell.yaml"
	}
	return filepath.Join(dir, "travelshell", "config.yaml")
}

func defaultLogPath() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "travelshell", "travelshell.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "travelshell.log"
	}
	return filepath.Join(home, ".travelshell", "travelshell.log")
}

// Load reads configuration from a YAML file over the defaults.
// A missing file is not an error. Env overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Label returns the nav bar label for a target name, falling back to the name itself.
func (c *Config) Label(name string) string {
	if l, ok := c.UI.Labels[name]; ok && l != "" {
		return l
	}
	return name
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv(LogPathEnv); p != "" {
		c.Log.Path = p
	}
	if l := os.Getenv(LogLevelEnv); l != "" {
		c.Log.Level = l
	}
	if s := os.Getenv(ServiceNameEnv); s != "" {
		c.Telemetry.ServiceName = s
	}
	if e := os.Getenv(OTLPEndpointEnv); e != "" {
		c.Telemetry.OTLPEndpoint = e
	}
}
