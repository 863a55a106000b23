package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/persist-make/pkg/errors"
)

const separator = string(filepath.Separator)

// Components splits a root-anchored path into its components. The path must
// begin with the path separator, which is stripped rather than counted as a
// component. Empty and "." components are dropped. ".." is rejected because
// it would step outside the roots the path is joined onto.
//
// "/" yields no components and no error.
func Components(relPath string) ([]string, error) {
	if relPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "path to materialize is empty").
			WithDetail(errors.DetailPath, relPath)
	}
	if !strings.HasPrefix(relPath, separator) {
		return nil, errors.Newf(errors.ErrInvalidInput, "path %q must begin with %q", relPath, separator).
			WithDetail(errors.DetailPath, relPath)
	}

	var components []string
	for _, part := range strings.Split(strings.TrimPrefix(relPath, separator), separator) {
		switch part {
		case "", ".":
			continue
		case "..":
			return nil, errors.Newf(errors.ErrInvalidInput, "path %q must not contain %q", relPath, "..").
				WithDetail(errors.DetailPath, relPath)
		}
		components = append(components, part)
	}
	return components, nil
}
