package machinery

import "testing"

func TestIsValidSubtype(t *testing.T) {
	cases := []struct {
		machineryType Type
		subtype       string
		want          bool
	}{
		{TypeJCB, "BUCKET", true},
		{TypeJCB, "BREAKER", true},
		{TypeJCB, "", false},
		{TypeJCB, "HALF_FEET", false},
		{TypeSLM, "HALF_FEET", true},
		{TypeSLM, "ONE_FEET", true},
		{TypeSLM, "BUCKET", false},
		{TypeCrane, "", true},
		{TypeCrane, "BUCKET", false},
		{TypeTractor, "", true},
	}
	for _, c := range cases {
		got := IsValidSubtype(c.machineryType, c.subtype)
		if got != c.want {
			t.Errorf("IsValidSubtype(%s, %q) = %v, want %v", c.machineryType, c.subtype, got, c.want)
		}
	}
}

func TestIsValidType(t *testing.T) {
	for _, s := range []string{"JCB", "SLM", "CRANE", "TRACTOR"} {
		if !IsValidType(s) {
			t.Errorf("IsValidType(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"EXCAVATOR", "jcb", ""} {
		if IsValidType(s) {
			t.Errorf("IsValidType(%q) = true, want false", s)
		}
	}
}
