package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmployeeCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"2024-00137", true},
		{"1999-99999", true},
		{"2024-137", false},
		{"24-00137", false},
		{"2024_00137", false},
		{"2024-001371", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmployeeCode(tt.code))
		})
	}
}

func TestIsValidDate(t *testing.T) {
	parsed, ok := IsValidDate("2025-06-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, 15, parsed.Day())

	_, ok = IsValidDate("15-06-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	assert.True(t, IsValidTimeOfDay("08:30"))
	assert.True(t, IsValidTimeOfDay("08:30:15"))
	assert.True(t, IsValidTimeOfDay("00:00"))
	assert.True(t, IsValidTimeOfDay("23:59"))
	assert.False(t, IsValidTimeOfDay("24:00"))
	assert.False(t, IsValidTimeOfDay("8:30 AM"))
	assert.False(t, IsValidTimeOfDay(""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("juan.delacruz@workline.ph"))
	assert.True(t, IsValidEmail("hr+payroll@example.co"))
	assert.False(t, IsValidEmail("no-at-sign.example.com"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsInSlice(t *testing.T) {
	days := []string{"Monday", "Tuesday"}
	assert.True(t, IsInSlice("Monday", days))
	assert.False(t, IsInSlice("monday", days))
	assert.False(t, IsInSlice("Sunday", days))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "role", Message: "is invalid"},
	}

	assert.Equal(t, "email: is required; role: is invalid", errs.Error())
	assert.Equal(t, map[string]string{"email": "is required", "role": "is invalid"}, errs.ToMap())
}
