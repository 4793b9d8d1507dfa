package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"09:15:30", 555, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"nine", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestLateMinutes(t *testing.T) {
	tests := []struct {
		name        string
		scheduledIn string
		actualIn    string
		want        int
	}{
		{"on time", "09:00", "09:00", 0},
		{"within grace", "09:00", "09:15", 0},
		{"grace boundary exceeded", "09:00", "09:16", 16},
		{"well late", "09:00", "10:30", 90},
		{"early arrival", "09:00", "08:30", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LateMinutes(tt.scheduledIn, tt.actualIn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUndertimeMinutes(t *testing.T) {
	got, err := UndertimeMinutes("17:00", "16:30")
	require.NoError(t, err)
	assert.Equal(t, 30, got)

	got, err = UndertimeMinutes("17:00", "17:30")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestHoursWorked(t *testing.T) {
	tests := []struct {
		name    string
		timeIn  string
		timeOut string
		want    string
	}{
		{"full day with break", "08:00", "17:00", "8"},
		{"short shift no break", "08:00", "12:00", "4"},
		{"break threshold exactly", "08:00", "13:00", "4"},
		{"just under threshold", "08:00", "12:59", "4.98"},
		{"night shift across midnight", "22:00", "06:00", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HoursWorked(tt.timeIn, tt.timeOut)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s want %s", got, tt.want)
		})
	}
}

func TestOvertimeHours(t *testing.T) {
	got, err := OvertimeHours("17:00", "19:30")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("2.5")), "got %s", got)

	// Cap at 12 hours even when the clock math says more.
	got, err = OvertimeHours("17:00", "16:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(12)), "got %s", got)

	got, err = OvertimeHours("17:00", "17:00")
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestOvertimeBeyondStandardDay(t *testing.T) {
	got, err := OvertimeBeyondStandardDay("08:00", "18:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(2)), "got %s", got)

	got, err = OvertimeBeyondStandardDay("08:00", "15:00")
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestComputeDeductions(t *testing.T) {
	rate := decimal.NewFromInt(100)

	ded := ComputeDeductions(30, 15, 2, rate)

	assert.True(t, ded.Tardiness.Equal(decimal.NewFromInt(50)), "tardiness %s", ded.Tardiness)
	assert.True(t, ded.Undertime.Equal(decimal.NewFromInt(25)), "undertime %s", ded.Undertime)
	assert.True(t, ded.Absence.Equal(decimal.NewFromInt(1600)), "absence %s", ded.Absence)
	assert.True(t, ded.Total().Equal(decimal.NewFromInt(1675)), "total %s", ded.Total())
}

func TestHolidayPay(t *testing.T) {
	hours := decimal.NewFromInt(8)
	rate := decimal.NewFromInt(100)

	tests := []struct {
		name      string
		kind      HolidayKind
		isRestDay bool
		hours     decimal.Decimal
		want      string
	}{
		{"regular holiday", HolidayRegular, false, hours, "1600"},
		{"regular holiday on rest day", HolidayRegular, true, hours, "2080"},
		{"rest day only", HolidayNone, true, hours, "1040"},
		{"special holiday worked", HolidaySpecial, false, hours, "1040"},
		{"special holiday not worked", HolidaySpecial, false, decimal.Zero, "0"},
		{"ordinary day", HolidayNone, false, hours, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HolidayPay(tt.hours, rate, tt.kind, tt.isRestDay)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s want %s", got, tt.want)
		})
	}
}

func TestNightDifferentialPay(t *testing.T) {
	rate := decimal.NewFromInt(100)

	// 22:00 to 06:00 is fully inside the window: 8 hours at 10% of rate.
	got, err := NightDifferentialPay("22:00", "06:00", rate)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(80)), "got %s", got)

	// Day shift never touches the window.
	got, err = NightDifferentialPay("08:00", "17:00", rate)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "got %s", got)

	// 20:00 to 23:00 overlaps one hour of the window.
	got, err = NightDifferentialPay("20:00", "23:00", rate)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(10)), "got %s", got)
}
