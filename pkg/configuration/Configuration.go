package configuration

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/simplecontainer/apimethod/pkg/static"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func NewConfig() *Configuration {
	return &Configuration{
		Environment: NewEnvironment(),
		LogLevel:    static.DEFAULT_LOG_LEVEL,
		Headers:     map[string]string{},
		Transport: &Transport{
			Timeout:  0,
			Insecure: false,
		},
		Cache: &Cache{
			Enabled:         false,
			CleanupInterval: 5 * time.Minute,
		},
		Metrics: false,
	}
}

func NewEnvironment() *Environment {
	home, err := os.UserHomeDir()

	if err != nil {
		home = "."
	}

	directory := filepath.Join(home, static.ROOTDIR)

	return &Environment{
		Home:            home,
		ConfigDirectory: directory,
		ConfigFile:      filepath.Join(directory, static.CONFIGFILE),
	}
}

// SetDefaults registers every key so APICTL_* environment variables are
// picked up by Unmarshal.
func SetDefaults(v *viper.Viper, config *Configuration) {
	v.SetDefault("logLevel", config.LogLevel)
	v.SetDefault("headers", config.Headers)
	v.SetDefault("transport.timeout", config.Transport.Timeout)
	v.SetDefault("transport.caFile", config.Transport.CAFile)
	v.SetDefault("transport.insecure", config.Transport.Insecure)
	v.SetDefault("cache.enabled", config.Cache.Enabled)
	v.SetDefault("cache.cleanupInterval", config.Cache.CleanupInterval)
	v.SetDefault("metrics", config.Metrics)
}

// Load reads the configuration file at path on top of the defaults. A
// missing file is not an error.
func Load(v *viper.Viper, path string) (*Configuration, error) {
	configObj := NewConfig()

	if path != "" {
		configObj.Environment.ConfigFile = path
	}

	SetDefaults(v, configObj)

	v.SetEnvPrefix(static.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file, err := os.Open(configObj.Environment.ConfigFile)

	if err == nil {
		defer file.Close()

		v.SetConfigType("yaml")

		if err = v.ReadConfig(file); err != nil {
			return nil, errors.Wrapf(err, "failed to read configuration %s", configObj.Environment.ConfigFile)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to open configuration %s", configObj.Environment.ConfigFile)
	}

	environment := configObj.Environment

	if err = v.Unmarshal(configObj); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}

	configObj.Environment = environment

	return configObj, nil
}

func Save(configObj *Configuration) error {
	yamlObj, err := yaml.Marshal(*configObj)

	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(configObj.Environment.ConfigFile), 0750); err != nil {
		return err
	}

	return os.WriteFile(configObj.Environment.ConfigFile, yamlObj, 0644)
}
