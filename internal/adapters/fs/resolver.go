package fs

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs expands the given patterns in order.
//
// Literal paths pass through untouched, whether or not they exist, so a dry run can plan sources that are
// not checked out. Glob patterns are matched relative to root; their matches are sorted and reported
// relative to root as well. A pattern without matches is an error. Duplicates keep their first position.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	result := make([]string, 0, len(inputs))

	for _, input := range inputs {
		if !hasMeta(input) {
			if !slices.Contains(result, input) {
				result = append(result, input)
			}
			continue
		}

		pattern := input
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(root, input)
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", input)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "pattern matched nothing"), "pattern", input)
		}
		slices.Sort(matches)

		for _, match := range matches {
			path := match
			if !filepath.IsAbs(input) {
				if rel, err := filepath.Rel(root, match); err == nil {
					path = filepath.ToSlash(rel)
				}
			}
			if !slices.Contains(result, path) {
				result = append(result, path)
			}
		}
	}

	return result, nil
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, `*?[`)
}
