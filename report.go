package kriterion

import (
	"os"
	"time"

	"github.com/fatih/structs"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	client "github.com/influxdata/influxdb1-client/v2"

	"github.com/quantlabs/kriterion/models"
	"github.com/quantlabs/kriterion/settings"
)

// currentRunUUID groups the backtests of one optimization run under a single
// run_id tag. Zero for standalone runs.
var currentRunUUID time.Time

// LogBacktest writes the summary of a finished run as a point in the
// backtests influx database so runs can be compared across machines.
func LogBacktest(bt *models.Backtest, config settings.Config) error {
	addr := config.InfluxURL
	if addr == "" {
		addr = "http://localhost:8086"
	}
	influx, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     addr,
		Username: config.InfluxUser,
		Password: config.InfluxPassword,
	})
	if err != nil {
		return err
	}
	defer influx.Close()

	bp, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  "backtests",
		Precision: "us",
	})
	if err != nil {
		return err
	}

	backtestID := bt.Name + "-" + uuid.New().String()
	tags := map[string]string{
		"backtest_name": bt.Name,
		"symbol":        bt.Symbol,
		"run_id":        currentRunUUID.String(),
		"backtest_id":   backtestID,
	}

	fields := structs.Map(bt.Summary)
	fields["id"] = backtestID

	pt, err := client.NewPoint("result", tags, fields, time.Now())
	if err != nil {
		return err
	}
	bp.AddPoint(pt)

	return influx.Write(bp)
}

// WriteTrades exports the closed-trade list to a csv file.
func WriteTrades(path string, trades []models.Trade) error {
	tradeFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer tradeFile.Close()
	return gocsv.MarshalFile(&trades, tradeFile)
}
