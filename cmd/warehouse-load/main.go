package main

import (
	"context"
	"flag"
	"os"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/warehouse"
	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/pkg/logging"
)

func main() {
	dataDir := flag.String("data-dir", "data", "directory holding the csv artifacts")
	flag.Parse()

	log := logging.New()
	ctx := context.Background()

	cfg, err := warehouse.ConfigFromEnv()
	if err != nil {
		log.Error("warehouse config failed", "err", err)
		os.Exit(1)
	}
	db, err := cfg.Open()
	if err != nil {
		log.Error("warehouse connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	loader := warehouse.NewLoader(log, db, *dataDir)
	rows, err := loader.LoadAll(ctx)
	if err != nil {
		log.Error("warehouse load failed", "err", err)
		os.Exit(1)
	}
	log.Info("warehouse load complete", "rows", rows)
}
