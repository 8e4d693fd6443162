package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one worker's muster-roll cell for one calendar date. There is no
// history per key: resubmitting the same (worker, project, date) overwrites
// the previous values.
type Record struct {
	ID          string
	WorkerID    string
	ProjectID   *string
	Date        time.Time
	Present     bool
	HoursWorked decimal.Decimal
	Overtime    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	WorkerName *string
	WorkerType *string
}
