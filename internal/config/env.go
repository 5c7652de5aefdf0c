package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds runtime settings taken from the environment. The JSON config
// file carries game data; these only point at it and at the runtime
// resources.
type Env struct {
	ConfigPath string `env:"BATTLE_CONFIG" envDefault:"./battle_config.json"`
	DBPath     string `env:"BATTLE_DB" envDefault:"./data/battles.db"`
	// Address overrides the config file's server address when set.
	Address string `env:"BATTLE_ADDR"`
}

// ParseEnv loads runtime settings from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
