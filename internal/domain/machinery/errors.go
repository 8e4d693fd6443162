package machinery

import "errors"

// Machinery domain errors
var (
	ErrUsageNotFound = errors.New("machinery usage not found")
)
