package core

import (
	"github.com/arthur-debert/persist-make/pkg/config"
	"github.com/arthur-debert/persist-make/pkg/errors"
	"github.com/arthur-debert/persist-make/pkg/types"
)

// Apply materializes the manifest held in cfg: every entry of cfg.Paths
// under cfg.Roots.
func Apply(cfg *config.Config, fs types.FS) (*Result, error) {
	if cfg.Roots.Source == "" || cfg.Roots.Target == "" {
		return nil, errors.New(errors.ErrConfigValid, "roots.source and roots.target must both be set")
	}
	if len(cfg.Paths) == 0 {
		return nil, errors.New(errors.ErrConfigValid, "manifest lists no paths")
	}
	if err := cfg.ValidateManifest(); err != nil {
		return nil, err
	}
	return Make(MakeOptions{
		SourceRoot: cfg.Roots.Source,
		TargetRoot: cfg.Roots.Target,
		Paths:      cfg.Paths,
		FileSystem: fs,
	})
}
