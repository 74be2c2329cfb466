package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints build plans and artifacts with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashFile returns the content hash of a file as 16 hex digits.
func (h *Hasher) HashFile(path string) (string, error) {
	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", sum), nil
}

// HashPlan fingerprints the module name, every command and every expected output of a plan.
// Two plans hash equally exactly when they would run the same command lines in the same order.
func (h *Hasher) HashPlan(plan *domain.ModuleBuildPlan) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(plan.Module)
	_, _ = hasher.Write([]byte{0})

	for _, action := range plan.Actions {
		_, _ = hasher.WriteString(action.Command.Executable)
		_, _ = hasher.Write([]byte{0})
		for _, arg := range action.Command.Arguments {
			_, _ = hasher.WriteString(arg)
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0}) // Section separator

		_, _ = hasher.WriteString(action.Command.WorkingDirectory)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(action.Output)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	_, _ = hasher.WriteString(plan.InterfacePath)

	return fmt.Sprintf("%016x", hasher.Sum64())
}
