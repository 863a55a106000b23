package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for persist-make
	EnvConfigDir = "PERSIST_MAKE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for persist-make
	EnvStateDir = "PERSIST_MAKE_STATE_DIR"
)

const (
	// AppDirName is the directory name for persist-make files under XDG roots
	AppDirName = "persist-make"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "persist-make.log"
)

// ConfigDir returns the directory holding the user configuration.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory holding the log file.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// UserConfigPath returns the path of the user configuration file.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// LogFilePath returns the path of the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}
