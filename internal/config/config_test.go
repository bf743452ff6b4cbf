package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdempro/internal/util"
	"holdempro/pkg/poker/betting"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_SEED", "99")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal("limit", cfg.Game.Structure)
	a.Equal(10, cfg.Game.SmallBlind)
	a.Equal(20, cfg.Game.BigBlind)
	a.Equal(4, cfg.Table.Seats)
	a.Equal(2000, cfg.Table.StartingStack)
	a.Equal(10, cfg.Table.Hands)
	a.Equal("hands", cfg.HistoryDir)
	a.Equal("debug", cfg.LogLevel)

	// the environment wins over the file
	a.Equal(int64(99), cfg.Seed)

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_SEED", "123")
	// ensure we aren't using a pointer
	cfg.Seed = -1
	cfg = Instance()
	a.Equal(int64(99), cfg.Seed)

	rules := cfg.Rules()
	a.Equal(betting.Limit, rules.Structure)
	a.Equal(20, rules.BetUnitPreFlopFlop)
	a.NoError(rules.Validate())
}

func TestDefaults(t *testing.T) {
	defer util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal("no-limit", cfg.Game.Structure)
	a.Equal(25, cfg.Game.SmallBlind)
	a.Equal(50, cfg.Game.BigBlind)
	a.Equal(6, cfg.Table.Seats)
	a.Equal(5000, cfg.Table.StartingStack)
	a.NoError(cfg.Rules().Validate())
}

func TestLoad_invalidRules(t *testing.T) {
	defer util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")()
	defer util.SetEnv("HOLDEM_BIG_BLIND", "10")()

	assert.ErrorIs(t, Load(), betting.ErrInvalidConfiguration)
}
