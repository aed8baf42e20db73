package main

import (
	"context"
	"flag"
	"os"

	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/internal/warehouse"
	"github.com/SiddiqueDataEng/snowflake-datamodeling-retail/pkg/logging"
)

func main() {
	sqlDir := flag.String("sql-dir", "sql", "directory of SQL files to apply in filename order")
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

	n, err := warehouse.ApplySQLDir(ctx, log, db, *sqlDir)
	if err != nil {
		log.Error("schema apply failed", "err", err)
		os.Exit(1)
	}
	log.Info("schema apply complete", "statements", n)
}
