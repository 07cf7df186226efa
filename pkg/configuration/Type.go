package configuration

import "time"

type Configuration struct {
	Environment *Environment      `yaml:"-"`
	LogLevel    string            `yaml:"logLevel"`
	Headers     map[string]string `yaml:"headers,omitempty"`
	Transport   *Transport        `yaml:"transport"`
	Cache       *Cache            `yaml:"cache"`
	Metrics     bool              `yaml:"metrics"`
}

type Environment struct {
	Home            string
	ConfigDirectory string
	ConfigFile      string
}

type Transport struct {
	Timeout  time.Duration `yaml:"timeout"`
	CAFile   string        `yaml:"caFile,omitempty"`
	Insecure bool          `yaml:"insecure"`
}

type Cache struct {
	Enabled         bool          `yaml:"enabled"`
	CleanupInterval time.Duration `yaml:"cleanupInterval"`
}
