package configuration

import (
	"fmt"
	"net/url"

	nsq "github.com/nsqio/go-nsq"
	"github.com/sirupsen/logrus"
)

// Validate verifies the validity of the configuration object, returning every problem found.
func (c *Config) Validate() []error {
	var errs []error
	if c.Username == "" {
		errs = append(errs, fmt.Errorf("missing GitHub username"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid base URL %q", c.BaseURL))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	if c.NSQ.Enabled() && !nsq.IsValidTopicName(c.NSQ.Topic) {
		errs = append(errs, fmt.Errorf("invalid NSQ topic %q", c.NSQ.Topic))
	}
	return errs
}
