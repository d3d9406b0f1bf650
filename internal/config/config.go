package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	DefaultBoard string `toml:"default_board"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetBoardLibraryPath returns the path to the board library
func GetBoardLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "cardboard", "boards")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardboard", "config.toml")
}

// GetCacheDir returns the cache directory used for rendered card icons
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "cardboard")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := &Config{
		DefaultBoard: "default",
	}

	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return config, nil
}

// GetBoardPath returns the path to a board, either in the board library or a relative path
func GetBoardPath(boardName string) (string, error) {
	// First, try to find the board in the board library
	libraryPath := GetBoardLibraryPath()
	boardPath := filepath.Join(libraryPath, boardName)

	if _, err := os.Stat(boardPath); err == nil {
		return boardPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(boardName); err == nil {
		return boardName, nil
	}

	return "", fmt.Errorf("board not found: %s", boardName)
}

// GetDefaultBoard returns the default board name from config
func GetDefaultBoard() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultBoard, nil
}

// SetDefaultBoard sets the default board in the config
func SetDefaultBoard(boardName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultBoard = boardName

	configPath := GetConfigFilePath()
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error opening config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}
