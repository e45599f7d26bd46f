// Package config is used to configure the application settings.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
)

// Config - application configuration structure.
type Config struct {
	// Addr: string with the address on which the server will run (e.g., "localhost:8080").
	Addr string `json:"server_address"`
	// BaseURL: base URL of the application used to build download links.
	BaseURL string `json:"base_url"`
	// MongoURI: MongoDB connection string. Required; startup aborts without it.
	MongoURI string `json:"mongo_uri"`
	// DBName: name of the database holding the company records.
	DBName string `json:"db_name"`
	// CompaniesColl: name of the companies collection.
	CompaniesColl string `json:"companies_coll"`
	// ExportDir: directory where export artifacts are written.
	ExportDir string `json:"export_dir"`
	// ConfigPath: path to configuration file.
	ConfigPath string
	// Timeout: integer value representing the request processing timeout in seconds.
	Timeout int
}

var cfgDefault = Config{
	Addr:          "localhost:8080",
	BaseURL:       "http://localhost:8080",
	MongoURI:      "",
	DBName:        "Supply_Chain_Network_Mar2025",
	CompaniesColl: "companies",
	ExportDir:     "/tmp/exports",
	Timeout:       15,
	ConfigPath:    "",
}

// NewConfig creates and returns a new instance of the Config structure with predefined values.
func NewConfig() *Config {
	c := cfgDefault
	return &c
}

// ErrReadConfig - error reading json config.
var ErrReadConfig = errors.New("reading json config")

// ErrParseConfig - error parsing json config.
var ErrParseConfig = errors.New("parse json config")

// ErrMissingMongoURI - the required connection string was not provided.
var ErrMissingMongoURI = errors.New("MONGO_URI not set")

// Init initializes the application configuration using environment variables and command-line flags.
func Init(c *Config) error {
	if val, exist := os.LookupEnv("SERVER_ADDRESS"); exist {
		c.Addr = val
	}
	if val, exist := os.LookupEnv("BASE_URL"); exist {
		c.BaseURL = val
	}
	if val, exist := os.LookupEnv("MONGO_URI"); exist {
		c.MongoURI = val
	}
	if val, exist := os.LookupEnv("DB_NAME"); exist {
		c.DBName = val
	}
	if val, exist := os.LookupEnv("COMPANIES_COLL"); exist {
		c.CompaniesColl = val
	}
	if val, exist := os.LookupEnv("EXPORT_DIR"); exist {
		c.ExportDir = val
	}

	var flagCgf Config
	flag.StringVar(&flagCgf.Addr, "a", "", "HTTP-server startup address")
	flag.StringVar(&flagCgf.BaseURL, "b", "", "base address used in download links")
	flag.StringVar(&flagCgf.MongoURI, "m", "", "MongoDB connection string")
	flag.StringVar(&flagCgf.DBName, "n", "", "database name")
	flag.StringVar(&flagCgf.ExportDir, "e", "", "directory for export files")
	flag.StringVar(&flagCgf.ConfigPath, "c", "", "path to config file (json)")

	flag.Parse()

	if flagCgf.ConfigPath != "" {
		file, err := os.ReadFile(flagCgf.ConfigPath)
		if err != nil {
			return ErrReadConfig
		}
		if err := json.Unmarshal(file, &c); err != nil {
			return ErrParseConfig
		}
	}

	// override
	if flagCgf.Addr != "" {
		c.Addr = flagCgf.Addr
	}
	if flagCgf.BaseURL != "" {
		c.BaseURL = flagCgf.BaseURL
	}
	if flagCgf.MongoURI != "" {
		c.MongoURI = flagCgf.MongoURI
	}
	if flagCgf.DBName != "" {
		c.DBName = flagCgf.DBName
	}
	if flagCgf.ExportDir != "" {
		c.ExportDir = flagCgf.ExportDir
	}

	if c.MongoURI == "" {
		return ErrMissingMongoURI
	}

	return nil
}
