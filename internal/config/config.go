package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"json"`
	LogOutput string `yaml:"log-output" env:"TICTACTOE_LOG_OUTPUT" env-default:"tictactoe.log"`
	Game      Game   `yaml:"game"`
}

type Game struct {
	Mode string `yaml:"mode" env:"TICTACTOE_MODE" env-default:"human"`
	// Seed of the computer player; 0 picks a random one on start.
	Seed uint64 `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}
