package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mikey/avana-extractor/internal/core"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/avana/")
	v.AddConfigPath("$HOME/.avana")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromFile creates a configuration instance from an explicit config file
func NewFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("AVANA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Extraction defaults
	v.SetDefault("extraction.keywords", append([]string(nil), core.DefaultKeywords...))
	v.SetDefault("extraction.profile", "")
	v.SetDefault("extraction.excluded_domains", []string{})
	v.SetDefault("extraction.max_input_size", 0)
	v.SetDefault("extraction.charset", "utf-8")

	// Classifier defaults
	v.SetDefault("classifier.match_mode", string(core.MatchSubstring))
	v.SetDefault("classifier.match_domain", false)
	v.SetDefault("classifier.group_by", string(core.GroupByHost))

	// Output defaults
	v.SetDefault("output.format", "text")
	v.SetDefault("output.shortlist_size", 5)

	// Keyword profile store defaults
	v.SetDefault("store.type", "memory")
	v.SetDefault("store.sqlite_path", "/data/avana_keywords.db")
	v.SetDefault("store.mysql_dsn", "user:password@tcp(localhost:3306)/avana")

	// SMTP intake defaults
	v.SetDefault("server.listen_address", "0.0.0.0:10026")
	v.SetDefault("server.domain", "localhost")
	v.SetDefault("server.max_message_bytes", 30*1024*1024)
	v.SetDefault("server.max_recipients", 50)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.auth.username", "")
	v.SetDefault("server.auth.password", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Set overrides a configuration value
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetInt64 gets an int64 value from the configuration
func (c *Config) GetInt64(key string) int64 {
	return c.v.GetInt64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
