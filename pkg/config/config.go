package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	LogLevel string `env:"LOGGER_LEVEL" envDefault:"debug"`

	// Roster seed. Empty means the built-in default roster.
	SeedPath string `env:"SEED_PATH" envDefault:""`

	// Time layout: "seconds" or "minutes".
	TimeLayout string `env:"TIME_LAYOUT" envDefault:"seconds"`

	// Live results feed. Empty disables the harvester.
	FeedURL                string `env:"FEED_URL" envDefault:""`
	FeedRelayURL           string `env:"FEED_RELAY_URL" envDefault:""`
	HarvestIntervalSeconds int    `env:"HARVEST_INTERVAL_SECONDS" envDefault:"15"`

	TopN int `env:"TOP_N" envDefault:"10"`

	CSVPath   string `env:"CSV_PATH" envDefault:"klassement.csv"`
	ExcelPath string `env:"EXCEL_PATH" envDefault:""`
}

func ReadEnvConfig(cfg *Config) error {
	return env.Parse(cfg)
}
