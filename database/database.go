// Package database handles candle retrieval from a local postgres store.
package database

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/quantlabs/kriterion/models"
)

var (
	host     = envOr("CANDLE_DB_HOST", "localhost")
	port     = 5432
	user     = envOr("CANDLE_DB_USER", "kriterion")
	password = envOr("CANDLE_DB_PASSWORD", "")
	dbname   = envOr("CANDLE_DB_NAME", "candles")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Setup switches away from the default local connection; Setup("remote")
// reads the connection settings from the environment.
func Setup(env ...string) {
	if len(env) > 0 && env[0] == "remote" {
		host = os.Getenv("CANDLE_DB_HOST")
		user = os.Getenv("CANDLE_DB_USER")
		password = os.Getenv("CANDLE_DB_PASSWORD")
		if name := os.Getenv("CANDLE_DB_NAME"); name != "" {
			dbname = name
		}
	}
}

// GetCandlesByTime fetches daily bars for a symbol between start and end,
// sorted by timestamp with duplicate timestamps dropped (first row wins), so
// the result satisfies the simulator's strictly-increasing precondition. An
// unavailable store or an empty range surfaces as an error or an empty
// slice; callers treat both as "no data".
func GetCandlesByTime(symbol string, exchange string, interval string, start time.Time, end time.Time) ([]*models.Bar, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable",
		host, port, user, dbname)
	if password != "" {
		psqlInfo += " password=" + password
	}
	db, err := sqlx.Connect("postgres", psqlInfo)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	bars := []*models.Bar{}
	err = db.Select(&bars,
		"select timestamp, open, high, low, close, volume from candles where symbol = $1 and exchange = $2 and interval = $3 and timestamp >= $4 and timestamp <= $5",
		symbol, exchange, interval, start.Unix()*1000, end.Unix()*1000)
	if err != nil {
		return nil, err
	}

	return models.SortBars(bars), nil
}
