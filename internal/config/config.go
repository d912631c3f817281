// Package config holds the settings of the cards command.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mpsalisbury/cardcollection/pkg/cards"
)

type Config struct {
	Verbose bool     `mapstructure:"verbose"`
	Prompt  string   `mapstructure:"prompt"`
	Cards   []string `mapstructure:"card"`
}

func Defaults() Config {
	return Config{
		Prompt: "cards> ",
	}
}

// SetDefaults registers Defaults with v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("prompt", d.Prompt)
	v.SetDefault("card", d.Cards)
}

// Load reads the configuration out of v and checks it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if _, err := cfg.InitialCards(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// InitialCards parses the cards the registry starts with.
func (c Config) InitialCards() (cards.Cards, error) {
	cs, err := cards.ParseCards(c.Cards)
	if err != nil {
		return nil, fmt.Errorf("invalid --card: %w", err)
	}
	return cs, nil
}
