package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Supported DATABASE_TYPE values.
const (
	BackendKV     = "kv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all application configuration
type Config struct {
	// Storage
	DatabaseType string // "kv", "sqlite" or "memory"

	// Server
	ServerPort  string
	Environment string

	// Admin
	AdminToken string // empty disables the server-side admin check

	// Paths
	DatabaseFile string // $CONFIG_DIR/gomoviez.db (kv backend)
	SQLiteFile   string // $CONFIG_DIR/movies.sqlite (sqlite backend)
	UploadDir    string // $CONFIG_DIR/uploads unless overridden

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Setup viper FIRST to load .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("DATABASE_TYPE", BackendKV)
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	// NOW read CONFIG_DIR from viper (which has loaded .env file)
	configDir := viper.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "gomoviez")
	} else {
		// Convert relative path to absolute path
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	uploadDir := viper.GetString("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = filepath.Join(configDir, "uploads")
	}

	config := &Config{
		// Storage
		DatabaseType: viper.GetString("DATABASE_TYPE"),

		// Server
		ServerPort:  viper.GetString("SERVER_PORT"),
		Environment: viper.GetString("ENVIRONMENT"),

		// Admin
		AdminToken: viper.GetString("ADMIN_TOKEN"),

		// Paths
		DatabaseFile: filepath.Join(configDir, "gomoviez.db"),
		SQLiteFile:   filepath.Join(configDir, "movies.sqlite"),
		UploadDir:    uploadDir,

		// Logging
		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	// Validate backend selection
	switch config.DatabaseType {
	case BackendKV, BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("unsupported DATABASE_TYPE %q (expected kv, sqlite or memory)", config.DatabaseType)
	}

	return config, nil
}
