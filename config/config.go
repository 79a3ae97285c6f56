package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "PAYROLL_CONFIG_PATH"

type Config struct {
	Server struct {
		Port                int      `yaml:"port"`
		AllowedOrigins      []string `yaml:"allowed_origins"`
		ReadTimeoutSeconds  int      `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int      `yaml:"write_timeout_seconds"`
	} `yaml:"server"`

	Log struct {
		Level string `yaml:"level"`
		JSON  bool   `yaml:"json"`
	} `yaml:"log"`

	Payroll struct {
		RatesPath        string `yaml:"rates_path"`
		MinScheduleLines int    `yaml:"min_schedule_lines"`
	} `yaml:"payroll"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

// Load reads the YAML config at path (falling back to $PAYROLL_CONFIG_PATH).
// A .env file in the working directory is loaded first so ${VAR}
// placeholders in the YAML can refer to it. A missing config file yields the
// defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, err
		default:
			// Support ${ENV_VAR} placeholders in YAML config.
			data = []byte(os.ExpandEnv(string(data)))
			if err = yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Payroll.MinScheduleLines <= 0 {
		c.Payroll.MinScheduleLines = 5
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func (c *Config) ReadTimeout() time.Duration {
	if c.Server.ReadTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Server.ReadTimeoutSeconds) * time.Second
}

func (c *Config) WriteTimeout() time.Duration {
	if c.Server.WriteTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
}
