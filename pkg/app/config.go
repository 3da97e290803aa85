package app

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// BaseConfig contains the process level configuration shared by all
// commands.
type BaseConfig struct {
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is either "json" or "text".
	LogFormat string `mapstructure:"log_format"`
}

var defaultConfig = BaseConfig{
	LogLevel:  "info",
	LogFormat: "text",
}

func init() {
	_ = viper.BindEnv("log_level", "LOG_LEVEL")
	_ = viper.BindEnv("log_format", "LOG_FORMAT")
}

// LoadBaseConfig reads the base configuration from the environment and, if
// it exists, the config file at configPath.
func LoadBaseConfig(configPath string) (BaseConfig, error) {
	// viper.ReadInConfig only returns ConfigFileNotFoundError when searching,
	// so a missing explicit file is checked for here.
	if len(configPath) > 0 {
		if _, err := os.Stat(configPath); err == nil {
			viper.SetConfigFile(configPath)
			if err := viper.ReadInConfig(); err != nil {
				return defaultConfig, errors.Wrap(err, "failed to load config")
			}
		} else if !os.IsNotExist(err) {
			return defaultConfig, errors.Wrap(err, "failed to check if config exists")
		}
	}

	config := defaultConfig
	if err := viper.Unmarshal(&config); err != nil {
		return defaultConfig, errors.Wrap(err, "failed to unmarshal config")
	}
	return config, nil
}

// ConfigureLogger applies config to the standard logger.
func ConfigureLogger(config BaseConfig) {
	switch strings.ToLower(config.LogFormat) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		logrus.StandardLogger().WithField("log_level", config.LogLevel).Warn("unknown log level, ignoring")
	} else {
		logrus.SetLevel(level)
	}

	logrus.SetOutput(os.Stderr)
}
