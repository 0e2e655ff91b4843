package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDir returns the devmenu configuration directory.
// Respects DEVMENU_CONFIG_DIR override.
func ConfigDir() (string, error) {
	if dir := os.Getenv("DEVMENU_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(base, "devmenu"), nil
}

// LogDir returns the directory for devmenu log files.
// macOS: ~/Library/Logs/devmenu, elsewhere <ConfigDir>/logs.
func LogDir() (string, error) {
	if runtime.GOOS == "darwin" && os.Getenv("DEVMENU_CONFIG_DIR") == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("log dir: %w", err)
		}
		return filepath.Join(home, "Library", "Logs", "devmenu"), nil
	}
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, "logs"), nil
}

// LogFilePath returns the path of the launcher log file.
func LogFilePath() (string, error) {
	dir, err := LogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "devmenu.log"), nil
}

// ConfigFilePath returns the path to the config file. The first existing
// config.{json,toml,yaml,yml} wins; config.json is returned when none exist.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	for _, name := range []string{"config.json", "config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return filepath.Join(dir, "config.json"), nil
}
