package material

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type enum
type Type string

const (
	TypeSteel    Type = "STEEL"
	TypeCement   Type = "CEMENT"
	TypeSand     Type = "SAND"
	TypeGrit10MM Type = "GRIT_10MM"
	TypeGrit20MM Type = "GRIT_20MM"
	TypeGrit40MM Type = "GRIT_40MM"
	TypeBrick    Type = "BRICK"
	TypeStone    Type = "STONE"
)

// Units maps each material type to its measurement unit. The unit is derived
// from the type at create time, never supplied by the caller.
var Units = map[Type]string{
	TypeSteel:    "kg",
	TypeCement:   "kg",
	TypeSand:     "cubic feet",
	TypeGrit10MM: "cubic feet",
	TypeGrit20MM: "cubic feet",
	TypeGrit40MM: "cubic feet",
	TypeBrick:    "number",
	TypeStone:    "cubic feet",
}

func IsValidType(t string) bool {
	_, ok := Units[Type(t)]
	return ok
}

// UnitFor returns the measurement unit for a material type.
func UnitFor(t Type) (string, bool) {
	unit, ok := Units[t]
	return unit, ok
}

type Usage struct {
	ID        string
	ProjectID string
	Type      Type
	Unit      string
	Volume    decimal.Decimal
	Cost      decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}
