package configuration

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// LoadFile reads the configuration file at path on top of the provided configuration. Files
// ending in ".toml" are read as TOML, anything else as YAML.
func LoadFile(c *Config, path string) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read configuration file %q", path)
	}

	var raw map[string]interface{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(b), &raw); err != nil {
			return errors.Wrapf(err, "malformed configuration %q", path)
		}
	} else if err := yaml.Unmarshal(b, &raw); err != nil {
		return errors.Wrapf(err, "malformed configuration %q", path)
	}
	return errors.Wrapf(decode(raw, c), "invalid configuration %q", path)
}

func decode(raw map[string]interface{}, c *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           c,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
