package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdempro/internal/util"
	"holdempro/pkg/poker/betting"
)

// Config provides configuration for the hold'em table
type Config struct {
	loaded bool

	Game struct {
		Structure  string `yaml:"structure" envconfig:"structure"`
		SmallBlind int    `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind   int    `yaml:"bigBlind" envconfig:"big_blind"`
		Ante       int    `yaml:"ante" envconfig:"ante"`

		BetUnitPreFlopFlop int `yaml:"betUnitPreFlopFlop" envconfig:"bet_unit_pre_flop_flop"`
		BetUnitTurnRiver   int `yaml:"betUnitTurnRiver" envconfig:"bet_unit_turn_river"`
		MaxBetsPerStreet   int `yaml:"maxBetsPerStreet" envconfig:"max_bets_per_street"`
	} `yaml:"game"`

	Table struct {
		Seats         int `yaml:"seats" envconfig:"seats"`
		StartingStack int `yaml:"startingStack" envconfig:"starting_stack"`
		Hands         int `yaml:"hands" envconfig:"hands"`
	} `yaml:"table"`

	Seed       int64  `yaml:"seed" envconfig:"seed"`
	HistoryDir string `yaml:"historyDir" envconfig:"history_dir"`
	LogLevel   string `yaml:"logLevel" envconfig:"log_level"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults and the environment still apply.
func Load() error {
	config = defaults()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	if err := config.Rules().Validate(); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// Rules returns the betting rules described by the configuration
func (c Config) Rules() betting.Rules {
	return betting.Rules{
		Structure:          betting.Structure(c.Game.Structure),
		SmallBlind:         c.Game.SmallBlind,
		BigBlind:           c.Game.BigBlind,
		Ante:               c.Game.Ante,
		BetUnitPreFlopFlop: c.Game.BetUnitPreFlopFlop,
		BetUnitTurnRiver:   c.Game.BetUnitTurnRiver,
		MaxBetsPerStreet:   c.Game.MaxBetsPerStreet,
	}
}

func defaults() Config {
	var c Config
	c.Game.Structure = string(betting.NoLimit)
	c.Game.SmallBlind = 25
	c.Game.BigBlind = 50
	c.Table.Seats = 6
	c.Table.StartingStack = 5000
	c.Table.Hands = 1
	c.LogLevel = "info"

	return c
}
