// Package config handles configuration management for persist-make.
// It layers embedded defaults, the user config file, an explicit config
// file (TOML or YAML) and PERSIST_MAKE_* environment variables.
package config
