package app

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/opsretail/catalog/config"
)

// getDatabase opens the configured database. Failures panic; Init runs before
// anything else and a catalog without storage cannot do useful work.
func getDatabase(cfg config.DBConfig, workdir string) *gorm.DB {
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	switch cfg.Type {
	case "sqlite":
		path := cfg.Name
		if path == "" {
			path = "catalog.db"
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(workdir, path)
		}
		db, err := gorm.Open(sqlite.Open(path), gormConfig)
		if err != nil {
			panic(errors.Wrap(err, "failed to open sqlite database"))
		}
		return db
	default:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name)
		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			panic(errors.Wrap(err, "failed to connect to postgres"))
		}
		return db
	}
}
