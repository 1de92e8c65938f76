package settings

type Config struct {
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	Exchange       string `json:"exchange"`
	Interval       string `json:"interval"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	ShortWindow    int    `json:"short_window"`
	LongWindow     int    `json:"long_window"`
	DataFile       string `json:"data_file"`
	LogBacktest    bool   `json:"log_backtest"`
	InfluxURL      string `json:"influx_url"`
	InfluxUser     string `json:"influx_user"`
	InfluxPassword string `json:"influx_password"`
}
