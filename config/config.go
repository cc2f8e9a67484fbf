package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Workdir  string `yaml:"workdir"`
	Location string `yaml:"location"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type DBConfig struct {
	Type   string `yaml:"type"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Name   string `yaml:"name"`
	User   string `yaml:"user"`
	Passwd string `yaml:"passwd"`
	Debug  bool   `yaml:"debug"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system"`
	Logger   LogConfig `yaml:"logger"`
	Database DBConfig  `yaml:"database"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "catalog",
			Workdir:  "/var/catalog",
			Location: "Local",
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/catalog/catalog.log",
		},
		Database: DBConfig{
			Type:   "postgres",
			Host:   "127.0.0.1",
			Port:   5432,
			Name:   "catalog",
			User:   "postgres",
			Passwd: "postgres",
			Debug:  false,
		},
	}
}

// LoadConfig reads an AppConfig from a yaml file, applies defaults for
// omitted values and honors the CATALOG_DB_PASSWD environment override.
func LoadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	if passwd := os.Getenv("CATALOG_DB_PASSWD"); passwd != "" {
		cfg.Database.Passwd = passwd
	}

	return cfg, nil
}
