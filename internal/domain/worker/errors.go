package worker

import "errors"

// Worker domain errors
var (
	ErrWorkerNotFound  = errors.New("worker not found")
	ErrWorkerInactive  = errors.New("worker is not active")
	ErrAdvanceNotFound = errors.New("advance payment not found")
)
