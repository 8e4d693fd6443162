package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-08-15"); !ok {
		t.Error("IsValidDate(2026-08-15) = false, want true")
	}
	for _, s := range []string{"15-08-2026", "2026-13-01", "2026-08-32", "", "2026-08"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2026-08")
	if !ok {
		t.Fatal("IsValidMonth(2026-08) = false, want true")
	}
	if month.Day() != 1 {
		t.Errorf("IsValidMonth(2026-08) day = %d, want 1", month.Day())
	}
	for _, s := range []string{"2026", "2026-13", "08-2026", "2026-08-01", ""} {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "98765 43210", "98765-43210"}
	invalid := []string{"12345", "abcdefghij", "", "12345678901234567"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsWithinDay(t *testing.T) {
	cases := []struct {
		input decimal.Decimal
		want  bool
	}{
		{decimal.Zero, true},
		{decimal.NewFromInt(8), true},
		{decimal.NewFromInt(24), true},
		{decimal.NewFromFloat(24.5), false},
		{decimal.NewFromInt(-1), false},
	}
	for _, c := range cases {
		got := IsWithinDay(c.input)
		if got != c.want {
			t.Errorf("IsWithinDay(%s) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}

	if errs.Error() != "name: name is required; date: date must be in YYYY-MM-DD format" {
		t.Errorf("unexpected Error(): %q", errs.Error())
	}

	m := errs.ToMap()
	if m["name"] != "name is required" || m["date"] != "date must be in YYYY-MM-DD format" {
		t.Errorf("unexpected ToMap(): %v", m)
	}
}
