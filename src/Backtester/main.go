package main

import (
	"flag"
	"log"
	"time"

	"github.com/tantralabs/logger"

	"github.com/quantlabs/kriterion"
	"github.com/quantlabs/kriterion/database"
	"github.com/quantlabs/kriterion/models"
	"github.com/quantlabs/kriterion/settings"
)

func main() {
	configFile := flag.String("config", "config.json", "path to the backtest config")
	secret := flag.Bool("secret", false, "load the config from aws secrets manager instead of disk")
	optimize := flag.Bool("optimize", false, "search for the best sma windows before the final run")
	tradesOut := flag.String("trades", "", "write the closed trades to this csv file")
	flag.Parse()

	config, err := kriterion.LoadConfiguration(*configFile, *secret)
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	bt := kriterion.CreateNewBacktest(config)

	var bars []*models.Bar
	if config.DataFile != "" {
		bars, err = kriterion.LoadBars(config.DataFile)
	} else {
		start, end := parseDates(config)
		bars, err = database.GetCandlesByTime(config.Symbol, config.Exchange, config.Interval, start, end)
	}
	if err != nil {
		// An unavailable data source is a no-trade run, not a crash.
		logger.Errorf("No data available for %v: %v\n", config.Symbol, err)
		bars = nil
	}

	if *optimize {
		bt = kriterion.OptimizeWindows(bars, bt, 30)
	}

	if err := kriterion.RunBacktest(bars, &bt); err != nil {
		log.Fatal(err)
	}

	if bt.Kelly > 0 {
		logger.Infof("Positive edge on %v. Kelly suggests risking up to %.2f%% of capital per trade.\n", config.Symbol, bt.Kelly*100)
	} else {
		logger.Infof("No positive edge on %v. Kelly suggests risking 0%% of capital.\n", config.Symbol)
	}

	if *tradesOut != "" {
		if err := kriterion.WriteTrades(*tradesOut, bt.Trades); err != nil {
			log.Fatal(err)
		}
	}
	if bt.LogBacktest {
		if err := kriterion.LogBacktest(&bt, config); err != nil {
			logger.Errorf("Failed to log backtest to influx: %v\n", err)
		}
	}
}

func parseDates(config settings.Config) (time.Time, time.Time) {
	start, err := time.Parse("2006-01-02", config.StartDate)
	if err != nil {
		log.Fatal("Invalid start_date: ", err)
	}
	end, err := time.Parse("2006-01-02", config.EndDate)
	if err != nil {
		log.Fatal("Invalid end_date: ", err)
	}
	return start, end
}
