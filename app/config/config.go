package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the file locations backing the two stores. Both stores live
// in DataDir; backups taken before a reinitialize are written next to the
// records file.
type Config struct {
	DataDir     string
	RecordsFile string
	UsersFile   string
}

var AppConfig *Config

// Load reads configuration from the environment (with .env support) and
// sets up the data directory. Defaults match the original deployment:
// fees_data.csv and users.json in the working directory.
func Load() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	recordsFile := os.Getenv("FEES_DATA_FILE")
	if recordsFile == "" {
		recordsFile = "fees_data.csv"
	}

	usersFile := os.Getenv("USERS_FILE")
	if usersFile == "" {
		usersFile = "users.json"
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}

	AppConfig = &Config{
		DataDir:     dataDir,
		RecordsFile: filepath.Join(dataDir, recordsFile),
		UsersFile:   filepath.Join(dataDir, usersFile),
	}
	log.Printf("Data directory: %s", dataDir)
}

// Get returns the loaded configuration.
func Get() *Config {
	return AppConfig
}
