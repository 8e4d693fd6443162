package material

import "errors"

// Material domain errors
var (
	ErrUsageNotFound = errors.New("material usage not found")
)
