package configuration

import (
	"fmt"
	"strings"
)

const (
	// DefaultPort is the port the relay listens on when none is configured.
	DefaultPort = 3000

	// DefaultBaseURL is the GitHub REST API endpoint.
	DefaultBaseURL = "https://api.github.com/"

	// DefaultLogLevel is the logrus level used when none is configured.
	DefaultLogLevel = "info"
)

// Config is the main configuration object for the relay.
type Config struct {
	// Port is the TCP port the relay listens on.
	Port int `mapstructure:"port"`

	// Username is the GitHub account which is the subject of all queries.
	Username string `mapstructure:"username"`

	// Token is the static credential sent to GitHub. TokenFile is read when Token is empty.
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"token_file"`

	// BaseURL is the root of the GitHub REST API.
	BaseURL string `mapstructure:"base_url"`

	LogLevel string `mapstructure:"log_level"`

	NSQ NSQConfig `mapstructure:"nsq"`
}

// NSQConfig describes where issue creation events get published. Publishing is disabled when
// NSQDAddr is empty.
type NSQConfig struct {
	NSQDAddr string `mapstructure:"nsqd_addr"`
	Topic    string `mapstructure:"topic"`
}

// Enabled returns whether event publishing is configured.
func (n NSQConfig) Enabled() bool {
	return n.NSQDAddr != ""
}

// Default returns a configuration object populated with default values.
func Default() *Config {
	return &Config{
		Port:     DefaultPort,
		BaseURL:  DefaultBaseURL,
		LogLevel: DefaultLogLevel,
		NSQ: NSQConfig{
			Topic: "ghrelay_issues",
		},
	}
}

// ListenAddr returns the address the relay should listen on.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// NormalizedBaseURL returns the base URL with the trailing slash go-github requires.
func (c *Config) NormalizedBaseURL() string {
	if strings.HasSuffix(c.BaseURL, "/") {
		return c.BaseURL
	}
	return c.BaseURL + "/"
}
