package kriterion

import (
	"github.com/tantralabs/logger"

	"github.com/quantlabs/kriterion/models"
	"github.com/quantlabs/kriterion/settings"
)

// CreateNewBacktest builds a Backtest from a config, filling in the classic
// 50/200 golden-cross windows when none are given.
func CreateNewBacktest(config settings.Config) models.Backtest {
	if config.ShortWindow == 0 {
		config.ShortWindow = 50
	}
	if config.LongWindow == 0 {
		config.LongWindow = 200
	}
	name := config.Name
	if name == "" {
		name = config.Symbol
	}
	logger.Infof("Created backtest %v for %v (%v/%v)\n", name, config.Symbol, config.ShortWindow, config.LongWindow)
	return models.Backtest{
		Name:        name,
		Symbol:      config.Symbol,
		ShortWindow: config.ShortWindow,
		LongWindow:  config.LongWindow,
		LogBacktest: config.LogBacktest,
		Result:      make(map[string]interface{}),
	}
}
