package main

import (
	"flag"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"holdempro/internal/config"
	"holdempro/internal/rng"
	"holdempro/internal/util"
	"holdempro/pkg/history"
	"holdempro/pkg/poker/brain"
	"holdempro/pkg/poker/texasholdem"
	"holdempro/pkg/stats"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var hands = flag.Int("hands", 0, "number of hands to play (overrides the configuration)")

func main() {
	flag.Parse()

	if err := config.Load(); err != nil {
		logrus.WithError(err).Fatal("could not load the configuration")
	}

	setupLogger()
	cfg := config.Instance()

	handCount := cfg.Table.Hands
	if *hands > 0 {
		handCount = *hands
	}

	gen := rng.Crypto{}
	seats, providers := buildTable(cfg, gen)
	sink := buildSink(cfg)
	tracker := stats.NewTracker()

	logrus.WithFields(logrus.Fields{
		"version":   Version,
		"structure": cfg.Game.Structure,
		"seats":     len(seats),
		"hands":     handCount,
	}).Info("starting the table")

	for hand := 0; hand < handCount; hand++ {
		live := liveSeats(seats)
		if len(live) < 2 {
			logrus.Info("not enough funded players to continue")
			break
		}

		options := texasholdem.Options{
			Rules: cfg.Rules(),
			Seed:  handSeed(cfg.Seed, hand),
		}

		game, err := texasholdem.NewGame(logrus.StandardLogger(), live, options)
		if err != nil {
			logrus.WithError(err).Fatal("could not start the hand")
		}

		ids := make([]int64, len(live))
		for i, seat := range live {
			ids[i] = seat.ID
		}
		tracker.StartHand(ids)

		result, err := game.Run(providers)
		if err != nil {
			logrus.WithError(err).Fatal("the hand could not finish")
		}

		tracker.ObserveTrace(game.Trace())
		if err := sink.Record(result); err != nil {
			logrus.WithError(err).Error("could not record the hand")
		}

		for i := range seats {
			if chips, ok := result.FinalStacks[seats[i].ID]; ok {
				seats[i].Chips = chips
			}
		}

		// move the button
		seats = append(seats[1:], seats[0])
	}

	for _, seat := range seats {
		logrus.WithFields(logrus.Fields{
			"player": seat.Name,
			"stack":  seat.Chips,
			"hands":  tracker.Hands(seat.ID),
			"vpip":   tracker.VPIP(seat.ID),
			"pfr":    tracker.PFR(seat.ID),
			"af":     tracker.AggressionFactor(seat.ID),
		}).Info("session complete")
	}
}

// buildTable seats the configured number of players and cycles them through
// the available playing styles
func buildTable(cfg config.Config, gen rng.Generator) ([]texasholdem.Seat, map[int64]brain.DecisionProvider) {
	styles := []func(rng.Generator) brain.DecisionProvider{
		func(g rng.Generator) brain.DecisionProvider { return brain.NewBalanced(g) },
		func(g rng.Generator) brain.DecisionProvider { return brain.NewCautious(g) },
		func(g rng.Generator) brain.DecisionProvider { return brain.NewWild(g) },
		func(g rng.Generator) brain.DecisionProvider { return brain.NewRandom(g) },
	}

	seats := make([]texasholdem.Seat, 0, cfg.Table.Seats)
	providers := make(map[int64]brain.DecisionProvider)
	for i := 0; i < cfg.Table.Seats; i++ {
		id := int64(i + 1)
		seats = append(seats, texasholdem.Seat{
			ID:    id,
			Name:  util.GetRandomName(gen),
			Chips: cfg.Table.StartingStack,
		})

		providers[id] = styles[i%len(styles)](gen)
	}

	return seats, providers
}

func buildSink(cfg config.Config) history.Sink {
	if cfg.HistoryDir == "" {
		return history.Discard{}
	}

	sink, err := history.NewFileSink(cfg.HistoryDir)
	if err != nil {
		logrus.WithError(err).Fatal("could not open the history directory")
	}

	return sink
}

func liveSeats(seats []texasholdem.Seat) []texasholdem.Seat {
	live := make([]texasholdem.Seat, 0, len(seats))
	for _, seat := range seats {
		if seat.Chips > 0 {
			live = append(live, seat)
		}
	}

	return live
}

// handSeed keeps a configured seed reproducible across the session while
// still shuffling every hand differently
func handSeed(seed int64, hand int) int64 {
	if seed == 0 {
		return 0
	}

	return seed + int64(hand)
}

func setupLogger() {
	if lvl := config.Instance().LogLevel; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
