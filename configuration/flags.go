package configuration

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Flags returns the command line flags which map onto the configuration. Every flag can also be
// provided through its environment variable.
func Flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Configuration file (YAML or TOML)",
		},
		cli.StringFlag{
			Name:   "port, p",
			Usage:  "Port on which to listen",
			EnvVar: "PORT",
		},
		cli.StringFlag{
			Name:   "username, u",
			Usage:  "GitHub username whose profile is relayed",
			EnvVar: "GITHUB_USERNAME",
		},
		cli.StringFlag{
			Name:   "token",
			Usage:  "GitHub API token",
			EnvVar: "GITHUB_TOKEN",
		},
		cli.StringFlag{
			Name:   "token-file",
			Usage:  "GitHub API token file",
			EnvVar: "GITHUB_TOKEN_FILE",
		},
		cli.StringFlag{
			Name:   "base-url",
			Usage:  "GitHub API base URL",
			EnvVar: "GITHUB_API_BASE",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "Logging level (debug, info, warn, error)",
			EnvVar: "LOG_LEVEL",
		},
		cli.StringFlag{
			Name:   "nsqd",
			Usage:  "Address of the nsqd instance receiving issue events",
			EnvVar: "NSQD_ADDR",
		},
		cli.StringFlag{
			Name:   "nsq-topic",
			Usage:  "NSQ topic for issue events",
			EnvVar: "NSQ_TOPIC",
		},
	}
}

// FromFlags creates a configuration object from defaults, the optional configuration file, and
// the command line flags, in increasing order of precedence.
func FromFlags(c *cli.Context) (*Config, error) {
	config := Default()
	if path := lookupString(c, "config"); path != "" {
		if err := LoadFile(config, path); err != nil {
			return nil, err
		}
	}

	if v := lookupString(c, "port"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Errorf("invalid port %q", v)
		}
		config.Port = port
	}
	overrideString(&config.Username, lookupString(c, "username"))
	overrideString(&config.Token, lookupString(c, "token"))
	overrideString(&config.TokenFile, lookupString(c, "token-file"))
	overrideString(&config.BaseURL, lookupString(c, "base-url"))
	overrideString(&config.LogLevel, lookupString(c, "log-level"))
	overrideString(&config.NSQ.NSQDAddr, lookupString(c, "nsqd"))
	overrideString(&config.NSQ.Topic, lookupString(c, "nsq-topic"))
	return config, nil
}

// lookupString returns the value of a flag given to the current command, falling back to the
// value given before the command name.
func lookupString(c *cli.Context, name string) string {
	if v := c.String(name); v != "" {
		return v
	}
	return c.GlobalString(name)
}

func overrideString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
