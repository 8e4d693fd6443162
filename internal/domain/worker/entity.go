package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type enum
type Type string

const (
	TypeMason       Type = "MASON"
	TypeHelper      Type = "HELPER"
	TypeCarpenter   Type = "CARPENTER"
	TypeElectrician Type = "ELECTRICIAN"
	TypePlumber     Type = "PLUMBER"
	TypeOperator    Type = "OPERATOR"
	TypeSupervisor  Type = "SUPERVISOR"
)

// Types lists every valid worker type, in form-display order.
var Types = []Type{
	TypeMason,
	TypeHelper,
	TypeCarpenter,
	TypeElectrician,
	TypePlumber,
	TypeOperator,
	TypeSupervisor,
}

func IsValidType(t string) bool {
	for _, valid := range Types {
		if Type(t) == valid {
			return true
		}
	}
	return false
}

// Worker is never hard-deleted; IsActive carries the soft state instead.
type Worker struct {
	ID          string
	Name        string
	Type        Type
	HourlyRate  decimal.Decimal
	PhoneNumber *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AdvancePayment is a cash advance taken by a worker. It reduces the
// net-earnings display but has no effect on attendance itself.
type AdvancePayment struct {
	ID        string
	WorkerID  string
	Amount    decimal.Decimal
	Date      time.Time
	IsPaid    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
