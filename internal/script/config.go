// Package script loads YAML step scripts and runs them against a set of linear containers.
package script

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"gopkg.in/yaml.v2"
)

type Config struct {
	LogFile       string `yaml:"logFile"`
	LogLevel      string `yaml:"logLevel"`
	ArraySize     int    `yaml:"arraySize"`
	StackCapacity int    `yaml:"stackCapacity"`
	Steps         []Step `yaml:"steps"`
}

// Step is one operation against one of the runner's containers.
type Step struct {
	Target      string   `yaml:"target"`
	Op          string   `yaml:"op"`
	Args        []string `yaml:"args"`
	ExpectError bool     `yaml:"expectError"`
}

// Load reads the script at path. Environment variables referenced as $VAR or ${VAR} are expanded
// before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	content := []byte(os.ExpandEnv(string(data)))

	config := &Config{
		LogLevel:      "info",
		StackCapacity: 16,
	}
	err := yaml.Unmarshal(content, config)
	if err != nil {
		return nil, err
	}
	if config.ArraySize < 0 {
		return nil, fmt.Errorf("arraySize must not be negative, got %d", config.ArraySize)
	}
	if config.StackCapacity < 0 {
		return nil, fmt.Errorf("stackCapacity must not be negative, got %d", config.StackCapacity)
	}
	if _, err := log15.LvlFromString(config.LogLevel); err != nil {
		return nil, err
	}
	return config, nil
}

// Handler returns the log15 handler described by c: logfmt to LogFile if set, otherwise the
// terminal, filtered to LogLevel.
func (c *Config) Handler() (log15.Handler, error) {
	lvl, err := log15.LvlFromString(c.LogLevel)
	if err != nil {
		return nil, err
	}
	h := log15.StdoutHandler
	if c.LogFile != "" {
		h, err = log15.FileHandler(c.LogFile, log15.LogfmtFormat())
		if err != nil {
			return nil, err
		}
	}
	return log15.LvlFilterHandler(lvl, h), nil
}
