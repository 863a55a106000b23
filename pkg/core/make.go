package core

import (
	"github.com/arthur-debert/persist-make/pkg/errors"
	"github.com/arthur-debert/persist-make/pkg/filesystem"
	"github.com/arthur-debert/persist-make/pkg/logging"
	"github.com/arthur-debert/persist-make/pkg/materialize"
	"github.com/arthur-debert/persist-make/pkg/paths"
	"github.com/arthur-debert/persist-make/pkg/types"
)

// MakeOptions contains options for materializing paths
type MakeOptions struct {
	SourceRoot string
	TargetRoot string
	// Paths are root-anchored, e.g. "/var/lib/nixos"
	Paths []string

	// FileSystem is used for both trees; defaults to the OS filesystem
	FileSystem types.FS
}

// PathResult lists the steps taken for one requested path
type PathResult struct {
	Path  string
	Steps []materialize.Step
}

// Result is returned by a fully successful run
type Result struct {
	SourceRoot string
	TargetRoot string
	Paths      []PathResult
}

// Created counts the entries that did not exist on the target before the run
func (r *Result) Created() int {
	n := 0
	for _, p := range r.Paths {
		for _, s := range p.Steps {
			if s.Created {
				n++
			}
		}
	}
	return n
}

// Steps counts all materialization steps of the run
func (r *Result) Steps() int {
	n := 0
	for _, p := range r.Paths {
		n += len(p.Steps)
	}
	return n
}

// Make materializes every path in opts.Paths, in order, under
// opts.TargetRoot, mirroring opts.SourceRoot. It returns at the first error.
func Make(opts MakeOptions) (*Result, error) {
	logger := logging.GetLogger("core.make")
	defer logging.LogOperationStart(logger, "make")()

	if len(opts.Paths) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no paths to materialize")
	}

	// Validate everything up front so a typo in the last path cannot leave
	// the earlier ones half applied.
	accumulators := make([]*paths.Accumulator, 0, len(opts.Paths))
	for _, p := range opts.Paths {
		acc, err := paths.NewAccumulator(opts.SourceRoot, opts.TargetRoot, p)
		if err != nil {
			return nil, err
		}
		accumulators = append(accumulators, acc)
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	m := materialize.New(fs, fs)

	result := &Result{SourceRoot: opts.SourceRoot, TargetRoot: opts.TargetRoot}
	for i, acc := range accumulators {
		steps, err := MaterializePath(m, acc)
		if err != nil {
			logger.Error().
				Err(err).
				Str("path", opts.Paths[i]).
				Str("offending", errors.GetErrorPath(err)).
				Int("stepsApplied", len(steps)).
				Msg("Materialization failed")
			return nil, err
		}
		result.Paths = append(result.Paths, PathResult{Path: opts.Paths[i], Steps: steps})
		logger.Info().
			Str("path", opts.Paths[i]).
			Int("steps", len(steps)).
			Msg("Path materialized")
	}

	logger.Info().
		Str("sourceRoot", opts.SourceRoot).
		Str("targetRoot", opts.TargetRoot).
		Int("paths", len(result.Paths)).
		Int("created", result.Created()).
		Msg("All paths materialized")

	return result, nil
}

// MaterializePath feeds every pair of acc to m, shallowest first. On error
// the returned steps are the ones that completed before the failure.
func MaterializePath(m *materialize.Materializer, acc *paths.Accumulator) ([]materialize.Step, error) {
	steps := make([]materialize.Step, 0, acc.Len())
	for pair := range acc.Pairs() {
		step, err := m.Materialize(pair)
		if err != nil {
			return steps, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}
