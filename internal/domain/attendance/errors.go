package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrUnknownWorker  = errors.New("attendance entry references an unknown worker")
	ErrEmptyBatch     = errors.New("attendance submission contains no entries")
)
