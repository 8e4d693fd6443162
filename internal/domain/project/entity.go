package project

import (
	"time"
)

// Status enum
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
)

func IsValidStatus(s string) bool {
	return Status(s) == StatusActive || Status(s) == StatusCompleted
}

type Project struct {
	ID         string
	Code       string // human-readable project code, unique
	ClientName string
	Location   string
	StartDate  time.Time
	EndDate    *time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WorkerAssignment attaches a worker to a project for an interval. An open
// assignment has a nil EndDate; a worker can hold at most one open assignment
// per project, enforced by a partial unique index.
type WorkerAssignment struct {
	ID        string
	WorkerID  string
	ProjectID string
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	WorkerName  *string
	WorkerType  *string
	ProjectCode *string
}
