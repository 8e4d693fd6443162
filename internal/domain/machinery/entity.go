package machinery

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type enum
type Type string

const (
	TypeJCB     Type = "JCB"
	TypeSLM     Type = "SLM"
	TypeCrane   Type = "CRANE"
	TypeTractor Type = "TRACTOR"
)

// Subtypes maps each machinery type to its valid subtypes. Types with no
// entry take no subtype at all.
var Subtypes = map[Type][]string{
	TypeJCB: {"BUCKET", "BREAKER"},
	TypeSLM: {"HALF_FEET", "ONE_FEET"},
}

func IsValidType(t string) bool {
	switch Type(t) {
	case TypeJCB, TypeSLM, TypeCrane, TypeTractor:
		return true
	}
	return false
}

// IsValidSubtype reports whether subtype is allowed for the given type. An
// empty subtype is valid exactly when the type defines no subtypes.
func IsValidSubtype(t Type, subtype string) bool {
	valid, hasSubtypes := Subtypes[t]
	if !hasSubtypes {
		return subtype == ""
	}
	if subtype == "" {
		return false
	}
	for _, s := range valid {
		if s == subtype {
			return true
		}
	}
	return false
}

type Usage struct {
	ID         string
	ProjectID  string
	Type       Type
	Subtype    *string
	HoursUsed  decimal.Decimal
	HourlyRate decimal.Decimal
	TotalCost  decimal.Decimal
	Date       time.Time
	CreatedAt  time.Time
}
