package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/persist-make/pkg/errors"
	"github.com/arthur-debert/persist-make/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "PERSIST_MAKE_"

// LoadOptions selects the configuration sources
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set
	ConfigFile string

	// Overrides are applied last, keyed by koanf path (e.g. "roots.source")
	Overrides map[string]interface{}
}

// Load merges, in increasing priority: embedded defaults, the user config
// file, opts.ConfigFile, PERSIST_MAKE_* environment variables and
// opts.Overrides.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config if it exists
	userConfig := paths.UserConfigPath()
	if _, err := os.Stat(userConfig); err == nil {
		if err := loadFile(k, userConfig); err != nil {
			return nil, err
		}
	}

	// 3. Load explicit config
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s cannot be read", opts.ConfigFile).
				WithDetail(errors.DetailPath, opts.ConfigFile)
		}
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	// 4. Load env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Apply overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 6. Unmarshal
	cfg := Config{}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFile loads a TOML or YAML file, chosen by extension
func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return nil
}

// envKey maps PERSIST_MAKE_ROOTS_SOURCE to roots.source. Variables outside
// the configuration sections (such as PERSIST_MAKE_STATE_DIR) are skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch {
	case key == "paths":
		return key
	case strings.HasPrefix(key, "roots_"), strings.HasPrefix(key, "logging_"):
		return strings.Replace(key, "_", ".", 1)
	default:
		return ""
	}
}
