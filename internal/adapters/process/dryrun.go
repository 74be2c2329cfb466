package process

import (
	"context"
	"io"
	"sync"

	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
)

// DryRunPrefix marks every command line a DryRun executor records.
const DryRunPrefix = "[DRY RUN] "

var _ ports.Executor = (*DryRun)(nil)

// DryRun records commands instead of running them.
type DryRun struct {
	mu   sync.Mutex
	sink io.Writer
}

// NewDryRun creates a DryRun executor that writes one line per command to sink.
func NewDryRun(sink io.Writer) *DryRun {
	return &DryRun{sink: sink}
}

// Execute writes the rendered command and reports success without spawning anything.
func (d *DryRun) Execute(_ context.Context, cmd domain.Command) (domain.ExecutionResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := io.WriteString(d.sink, DryRunPrefix+cmd.Render()+"\n"); err != nil {
		return domain.ExecutionResult{}, zerr.Wrap(err, "failed to record command")
	}
	return domain.ExecutionResult{}, nil
}
