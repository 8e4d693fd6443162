package project

import "errors"

// Project domain errors
var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrProjectCodeExists  = errors.New("project code already exists")
	ErrAssignmentNotFound = errors.New("worker assignment not found")
	ErrAssignmentExists   = errors.New("worker already has an open assignment on this project")
)
