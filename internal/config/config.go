package config

import (
	"fmt"
	"strings"
	"time"

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
	v.AddConfigPath("/etc/phishing-portal/")
	v.AddConfigPath("$HOME/.phishing-portal")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// Set defaults
	setDefaults(v)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("PHISHING_PORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
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

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.transport", "http")
	v.SetDefault("server.listen_address", "0.0.0.0:8080")
	v.SetDefault("server.shutdown_timeout", "10s")

	// SMTP gateway defaults
	v.SetDefault("smtp.listen_address", "0.0.0.0:10025")
	v.SetDefault("smtp.upstream.address", "127.0.0.1")
	v.SetDefault("smtp.upstream.port", 10026)
	v.SetDefault("smtp.upstream.enabled", true)
	v.SetDefault("smtp.block_high_risk", false)
	v.SetDefault("smtp.headers.score", "X-Phishing-Score")
	v.SetDefault("smtp.headers.risk", "X-Phishing-Risk")
	v.SetDefault("smtp.headers.flagged", "X-Phishing-Flagged")

	// DNS defaults
	v.SetDefault("dns.servers", []string{"1.1.1.1:53", "8.8.8.8:53"})
	v.SetDefault("dns.timeout", "5s")

	// Authentication defaults
	v.SetDefault("auth.dkim_selectors", []string{"default", "google", "selector1", "k1"})
	v.SetDefault("auth.cache.enabled", true)
	v.SetDefault("auth.cache.ttl", "1h")
	v.SetDefault("auth.cache.cleanup_frequency", "10m")

	// Domain age defaults
	v.SetDefault("age.resolver", "placeholder")
	v.SetDefault("age.placeholder_created", "2020-01-01")

	// URL scanning defaults
	v.SetDefault("urlscan.shorteners", []string{
		"bit.ly", "tinyurl.com", "short.link", "ow.ly", "t.co",
		"goo.gl", "tiny.cc", "is.gd", "buff.ly", "adf.ly",
	})
	v.SetDefault("urlscan.suspicious_tlds", []string{
		".tk", ".ml", ".ga", ".cf", ".click", ".download", ".work",
	})
	v.SetDefault("urlscan.host_patterns", []string{
		"(?i)secure.*update",
		"(?i)account.*verification",
		"(?i)urgent.*action",
		"(?i)suspend.*account",
		"(?i)click.*here",
		"(?i)limited.*time",
	})

	// Homograph defaults
	v.SetDefault("homograph.brand_domains", []string{
		"paypal.com", "amazon.com", "google.com", "microsoft.com",
		"apple.com", "facebook.com", "twitter.com", "linkedin.com",
	})

	// Analysis defaults
	v.SetDefault("analysis.max_email_bytes", 262144)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
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
