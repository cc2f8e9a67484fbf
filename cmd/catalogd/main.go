package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/opsretail/catalog/config"
	"github.com/opsretail/catalog/internal/app"
)

var (
	configFile = flag.String("c", "catalog.yml", "config file path")
	initDb     = flag.Bool("initdb", false, "drop and recreate the database schema")
)

func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	if _, err := os.Stat(*configFile); err == nil {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initDb {
		application.InitDb()
	}

	zap.L().Info("catalog service ready",
		zap.String("appid", cfg.System.Appid),
		zap.String("database", cfg.Database.Type))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	zap.L().Info("shutting down")
}
