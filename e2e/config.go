package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_VERBOSE dumps every shell answer in the test logs
	Verbose bool `envconfig:"E2E_VERBOSE" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_LOG_LEVEL is the level of the application logger
	LogLevel string `envconfig:"E2E_LOG_LEVEL" default:"ERROR"`
	// E2E_RANDOM_OPERATIONS is the length of the randomized scenario
	RandomOperations int `envconfig:"E2E_RANDOM_OPERATIONS" default:"500"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
