package worker

import (
	"context"
)

// Worker is a long-running background job.
type Worker interface {
	// Start runs the worker loop until the context or stop channel fires
	Start(ctx context.Context) error

	// Stop signals the worker to finish
	Stop() error

	// Name identifies the worker in logs
	Name() string
}
