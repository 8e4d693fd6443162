package material

import "testing"

func TestUnits(t *testing.T) {
	cases := []struct {
		materialType Type
		want         string
	}{
		{TypeSteel, "kg"},
		{TypeCement, "kg"},
		{TypeSand, "cubic feet"},
		{TypeGrit10MM, "cubic feet"},
		{TypeGrit20MM, "cubic feet"},
		{TypeGrit40MM, "cubic feet"},
		{TypeStone, "cubic feet"},
		{TypeBrick, "number"},
	}
	for _, c := range cases {
		unit, ok := UnitFor(c.materialType)
		if !ok {
			t.Errorf("UnitFor(%s) not found", c.materialType)
			continue
		}
		if unit != c.want {
			t.Errorf("UnitFor(%s) = %q, want %q", c.materialType, unit, c.want)
		}
	}
}

func TestIsValidType(t *testing.T) {
	if !IsValidType("CEMENT") {
		t.Error("IsValidType(CEMENT) = false, want true")
	}
	for _, s := range []string{"WOOD", "cement", ""} {
		if IsValidType(s) {
			t.Errorf("IsValidType(%q) = true, want false", s)
		}
	}
}
