package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/milk9111/tilerunner/engine"
	"github.com/milk9111/tilerunner/entity"
	"github.com/milk9111/tilerunner/levels"
	"github.com/milk9111/tilerunner/prefabs"
)

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilerunner",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level", "level", flagLogLevel)
	}
	return logger
}

// newLevel loads the setup and the campaign and starts the requested level.
func newLevel(logger *log.Logger, opts ...engine.Option) (*engine.Level, *levels.Campaign, error) {
	cfg, err := prefabs.LoadSetup(flagSetup)
	if err != nil {
		return nil, nil, err
	}
	campaign, err := levels.Default()
	if err != nil {
		return nil, nil, fmt.Errorf("load campaign: %w", err)
	}

	start := campaign.First()
	if flagLevel != 0 {
		start = campaign.ByID(flagLevel)
		if start == nil {
			return nil, nil, fmt.Errorf("unknown level %d", flagLevel)
		}
	}

	opts = append([]engine.Option{
		engine.WithLogger(logger),
		engine.WithCampaign(campaign),
	}, opts...)
	l := engine.NewLevel(cfg, entity.Registry(), opts...)
	if err := l.Load(start); err != nil {
		return nil, nil, fmt.Errorf("load level %d: %w", start.ID, err)
	}
	return l, campaign, nil
}

func heroOf(l *engine.Level) *entity.Hero {
	h, _ := l.Hero().(*entity.Hero)
	return h
}

// logEvent reports level lifecycle events. Spawns and removals are only
// interesting while debugging.
func logEvent(logger *log.Logger, evt engine.Event) {
	switch evt.Type {
	case engine.EventSpawned, engine.EventRemoved:
		logger.Debug(string(evt.Type), "kind", evt.Kind, "handle", evt.Handle)
	case engine.EventGameOver:
		logger.Warn("game over", "level", evt.LevelID)
	case engine.EventVictory:
		logger.Info("level complete", "level", evt.LevelID)
	case engine.EventReloaded:
		lives := 0
		if evt.Transfer != nil {
			lives = evt.Transfer.Lives
		}
		logger.Info("hero died", "level", evt.LevelID, "lives", lives)
	}
}
