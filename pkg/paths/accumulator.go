package paths

import (
	"iter"
	"path/filepath"

	"github.com/arthur-debert/persist-make/pkg/errors"
	"github.com/arthur-debert/persist-make/pkg/types"
)

// Accumulator derives the source/target path pair for every prefix of a
// relative path.
type Accumulator struct {
	sourceRoot string
	targetRoot string
	components []string
}

// NewAccumulator validates the roots and splits relPath into components.
func NewAccumulator(sourceRoot, targetRoot, relPath string) (*Accumulator, error) {
	if !filepath.IsAbs(sourceRoot) {
		return nil, notAbsolute("source", sourceRoot)
	}
	if !filepath.IsAbs(targetRoot) {
		return nil, notAbsolute("target", targetRoot)
	}

	components, err := Components(relPath)
	if err != nil {
		return nil, err
	}

	return &Accumulator{
		sourceRoot: filepath.Clean(sourceRoot),
		targetRoot: filepath.Clean(targetRoot),
		components: components,
	}, nil
}

// Len returns the number of pairs Pairs will yield.
func (a *Accumulator) Len() int {
	return len(a.components)
}

// Pairs yields one pair per component, shallowest first. Each pair extends
// the previous one by a single component.
func (a *Accumulator) Pairs() iter.Seq[types.Pair] {
	return func(yield func(types.Pair) bool) {
		source, target := a.sourceRoot, a.targetRoot
		for i, component := range a.components {
			source = filepath.Join(source, component)
			target = filepath.Join(target, component)
			if !yield(types.Pair{Depth: i + 1, Source: source, Target: target}) {
				return
			}
		}
	}
}

func notAbsolute(name, root string) error {
	return errors.Newf(errors.ErrInvalidInput, "%s root %q must be an absolute path", name, root).
		WithDetail(errors.DetailPath, root)
}
