// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/importa/internal/core/domain"
)

// Executor runs a single command to completion.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and returns its exit status and captured output.
	//
	// A process that ran and exited non-zero is reported through the result, not the error.
	// The error is reserved for commands that could not be started at all.
	Execute(ctx context.Context, cmd domain.Command) (domain.ExecutionResult, error)
}
