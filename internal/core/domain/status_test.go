package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/importa/internal/core/domain"
)

func TestModuleStatus(t *testing.T) {
	tests := []struct {
		status     domain.ModuleStatus
		isTerminal bool
		blocks     bool
	}{
		{domain.ModuleStatusPending, false, false},
		{domain.ModuleStatusRunning, false, false},
		{domain.ModuleStatusCompleted, true, false},
		{domain.ModuleStatusFailed, true, true},
		{domain.ModuleStatusSkipped, true, true},
		{domain.ModuleStatus(""), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
			assert.Equal(t, tt.blocks, tt.status.BlocksDependents())
		})
	}
}
