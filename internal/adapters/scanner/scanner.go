// Package scanner reads module declarations and imports from C++ sources.
package scanner

import (
	"bufio"
	"os"
	"regexp"
	"slices"

	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultScanLimit is the number of bytes read from a file before scanning stops.
const DefaultScanLimit = 128 * 1024

// maxLineLength bounds a single source line.
const maxLineLength = 1024 * 1024

var (
	exportModulePattern = regexp.MustCompile(`\bexport\s+module\s+([A-Za-z0-9_:.\-]+)\s*;`)
	importPattern       = regexp.MustCompile(`\bimport\s+([A-Za-z0-9_:.\-]+)\s*;`)
)

var _ ports.SourceScanner = (*RegexScanner)(nil)

// RegexScanner matches declarations line by line. It does not understand comments or the preprocessor.
type RegexScanner struct {
	limit int
}

// New creates a RegexScanner that stops after limit bytes. A non-positive limit means DefaultScanLimit.
func New(limit int) *RegexScanner {
	if limit <= 0 {
		limit = DefaultScanLimit
	}
	return &RegexScanner{limit: limit}
}

// Scan returns the first exported module name and every imported name of the file.
// Imports keep the order of their first appearance. The line that crosses the limit is still scanned.
func (s *RegexScanner) Scan(path string) (domain.SourceInfo, error) {
	info := domain.SourceInfo{Path: path}

	f, err := os.Open(path) //nolint:gosec // path comes from the project file
	if err != nil {
		return info, zerr.With(zerr.Wrap(err, "failed to open source"), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	scanned := 0
	for sc.Scan() {
		line := sc.Text()
		// The scanner strips the newline.
		scanned += len(line) + 1

		if info.Module == "" {
			if m := exportModulePattern.FindStringSubmatch(line); m != nil {
				info.Module = m[1]
			}
		}
		for _, m := range importPattern.FindAllStringSubmatch(line, -1) {
			if !slices.Contains(info.Imports, m[1]) {
				info.Imports = append(info.Imports, m[1])
			}
		}

		if scanned > s.limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return info, zerr.With(zerr.Wrap(err, "failed to scan source"), "path", path)
	}

	return info, nil
}
