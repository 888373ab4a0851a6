package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application configuration. Secrets come from the environment
// (RELAY_* overrides), everything else from the YAML file.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	Squarespace SquarespaceConfig `mapstructure:"squarespace"`
	Liteview    LiteviewConfig    `mapstructure:"liteview"`
	Filter      FilterConfig      `mapstructure:"filter"`
	MySQL       MySQLConfig       `mapstructure:"mysql"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Slack       SlackConfig       `mapstructure:"slack"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// SquarespaceConfig configures the commerce provider client.
type SquarespaceConfig struct {
	APIBase string `mapstructure:"api_base"`
	Token   string `mapstructure:"token"`
}

// LiteviewConfig configures the fulfillment partner client. Account is the
// account-specific path segment of the submit endpoint.
type LiteviewConfig struct {
	APIBase string `mapstructure:"api_base"`
	AppKey  string `mapstructure:"app_key"`
	Account string `mapstructure:"account"`
}

// FilterConfig controls which line items are eligible for fulfillment.
type FilterConfig struct {
	BrandMarker string `mapstructure:"brand_marker"`
}

type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig configures the optional relay-outcome broadcast. Leaving Addr
// empty disables publishing.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

type SlackConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

// Load reads the configuration file and applies environment overrides.
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("RELAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unmarshal only sees env values for keys that are explicitly bound.
	for _, key := range []string{
		"squarespace.token",
		"liteview.app_key",
		"liteview.account",
		"mysql.dsn",
		"redis.addr",
		"redis.password",
		"slack.webhook_url",
	} {
		_ = viper.BindEnv(key)
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Squarespace.APIBase == "" {
		cfg.Squarespace.APIBase = "https://api.squarespace.com"
	}
	if cfg.Liteview.APIBase == "" {
		cfg.Liteview.APIBase = "https://liteviewapi.imaginefulfillment.com"
	}
	if cfg.Filter.BrandMarker == "" {
		cfg.Filter.BrandMarker = "NBA"
	}
	if cfg.Redis.Channel == "" {
		cfg.Redis.Channel = "order_relay_complete"
	}

	return &cfg, nil
}

// LoadDefault loads the default configuration file path.
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.Squarespace.Token == "" {
		return fmt.Errorf("squarespace.token is required")
	}
	if c.Liteview.AppKey == "" {
		return fmt.Errorf("liteview.app_key is required")
	}
	if c.Liteview.Account == "" {
		return fmt.Errorf("liteview.account is required")
	}
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql.dsn is required")
	}
	if c.Slack.WebhookURL == "" {
		return fmt.Errorf("slack.webhook_url is required")
	}
	return nil
}
