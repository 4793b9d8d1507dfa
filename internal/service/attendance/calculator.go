package attendance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Business-rule constants for the attendance calculators. All time math works
// on wall-clock "HH:MM[:SS]" strings, not dates.
const (
	GracePeriodMinutes    = 15
	StandardDayMinutes    = 480 // 8 hours
	StandardHoursPerDay   = 8
	BreakThresholdMinutes = 300 // break applies once a shift reaches 5 hours
	BreakMinutes          = 60
	MaxOvertimeMinutes    = 720 // overtime caps at 12 hours
	MinutesPerDay         = 24 * 60

	nightDiffStartMinute = 22 * 60 // 22:00
	nightDiffEndMinute   = 6 * 60  // 06:00
)

var (
	minutesPerHour = decimal.NewFromInt(60)
	hundred        = decimal.NewFromInt(100)
)

// ParseClock converts "HH:MM" or "HH:MM:SS" into minutes since midnight.
// Seconds are ignored.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	return hour*60 + minute, nil
}

// elapsedMinutes measures in→out, treating out <= in as crossing midnight.
func elapsedMinutes(inMinute, outMinute int) int {
	elapsed := outMinute - inMinute
	if elapsed <= 0 {
		elapsed += MinutesPerDay
	}
	return elapsed
}

// LateMinutes returns raw lateness, with lateness inside the grace period
// forgiven entirely. Lateness beyond the grace period is charged in full from
// the scheduled time, not prorated from the grace boundary.
func LateMinutes(scheduledIn, actualIn string) (int, error) {
	schedMin, err := ParseClock(scheduledIn)
	if err != nil {
		return 0, err
	}
	actualMin, err := ParseClock(actualIn)
	if err != nil {
		return 0, err
	}

	late := actualMin - schedMin
	if late <= GracePeriodMinutes {
		return 0, nil
	}
	return late, nil
}

// UndertimeMinutes returns how many minutes before the scheduled out the
// employee left, floored at zero.
func UndertimeMinutes(scheduledOut, actualOut string) (int, error) {
	schedMin, err := ParseClock(scheduledOut)
	if err != nil {
		return 0, err
	}
	actualMin, err := ParseClock(actualOut)
	if err != nil {
		return 0, err
	}

	undertime := schedMin - actualMin
	if undertime < 0 {
		undertime = 0
	}
	return undertime, nil
}

// HoursWorked measures the in→out span, deducting the unpaid break once the
// span reaches 5 hours, as hours with 2-decimal rounding.
func HoursWorked(timeIn, timeOut string) (decimal.Decimal, error) {
	inMin, err := ParseClock(timeIn)
	if err != nil {
		return decimal.Zero, err
	}
	outMin, err := ParseClock(timeOut)
	if err != nil {
		return decimal.Zero, err
	}

	elapsed := elapsedMinutes(inMin, outMin)
	if elapsed >= BreakThresholdMinutes {
		elapsed -= BreakMinutes
	}

	return decimal.NewFromInt(int64(elapsed)).Div(minutesPerHour).Round(2), nil
}

// OvertimeHours measures minutes past the scheduled out, wrapping past
// midnight when the actual out is earlier on the clock, capped at 12 hours.
func OvertimeHours(scheduledOut, actualOut string) (decimal.Decimal, error) {
	schedMin, err := ParseClock(scheduledOut)
	if err != nil {
		return decimal.Zero, err
	}
	actualMin, err := ParseClock(actualOut)
	if err != nil {
		return decimal.Zero, err
	}

	overtime := actualMin - schedMin
	if overtime < 0 {
		overtime += MinutesPerDay
	}
	if overtime > MaxOvertimeMinutes {
		overtime = MaxOvertimeMinutes
	}

	return decimal.NewFromInt(int64(overtime)).Div(minutesPerHour).Round(2), nil
}

// OvertimeBeyondStandardDay is the time-out action's overtime: whatever was
// worked past 8 hours, independent of the scheduled out. This deliberately
// differs from OvertimeHours; the two policies serve different call sites and
// are not reconciled.
func OvertimeBeyondStandardDay(timeIn, timeOut string) (decimal.Decimal, error) {
	inMin, err := ParseClock(timeIn)
	if err != nil {
		return decimal.Zero, err
	}
	outMin, err := ParseClock(timeOut)
	if err != nil {
		return decimal.Zero, err
	}

	overtime := elapsedMinutes(inMin, outMin) - StandardDayMinutes
	if overtime < 0 {
		overtime = 0
	}

	return decimal.NewFromInt(int64(overtime)).Div(minutesPerHour).Round(2), nil
}

// Deductions is the monetary outcome of lateness, undertime and absence for
// one period at one hourly rate.
type Deductions struct {
	Tardiness decimal.Decimal
	Undertime decimal.Decimal
	Absence   decimal.Decimal
}

func (d Deductions) Total() decimal.Decimal {
	return d.Tardiness.Add(d.Undertime).Add(d.Absence)
}

// ComputeDeductions prices minutes and absent days: late and undertime cost
// (minutes/60)*rate, each absent day costs a standard 8-hour day.
func ComputeDeductions(lateMinutes, undertimeMinutes, absentDays int, ratePerHour decimal.Decimal) Deductions {
	return Deductions{
		Tardiness: decimal.NewFromInt(int64(lateMinutes)).Div(minutesPerHour).Mul(ratePerHour).Round(2),
		Undertime: decimal.NewFromInt(int64(undertimeMinutes)).Div(minutesPerHour).Mul(ratePerHour).Round(2),
		Absence:   decimal.NewFromInt(int64(absentDays)).Mul(decimal.NewFromInt(StandardHoursPerDay)).Mul(ratePerHour).Round(2),
	}
}

// HolidayKind classifies the calendar day for premium pay.
type HolidayKind int

const (
	HolidayNone HolidayKind = iota
	HolidayRegular
	HolidaySpecial
)

// HolidayPay applies the flat premium multipliers: regular holiday 200%,
// rest day 130%, rest day falling on a regular holiday 260%, special holiday
// 130% only when worked.
func HolidayPay(hoursWorked, ratePerHour decimal.Decimal, kind HolidayKind, isRestDay bool) decimal.Decimal {
	base := hoursWorked.Mul(ratePerHour)

	var pct int64
	switch {
	case kind == HolidayRegular && isRestDay:
		pct = 260
	case kind == HolidayRegular:
		pct = 200
	case kind == HolidaySpecial && hoursWorked.IsPositive():
		pct = 130
	case kind == HolidaySpecial:
		return decimal.Zero
	case isRestDay:
		pct = 130
	default:
		return decimal.Zero
	}

	return base.Mul(decimal.NewFromInt(pct)).Div(hundred).Round(2)
}

// NightDifferentialPay adds 10% of the hourly rate for every minute worked
// between 22:00 and 06:00, scanning the shift minute by minute so windows
// that wrap midnight are counted correctly.
func NightDifferentialPay(timeIn, timeOut string, ratePerHour decimal.Decimal) (decimal.Decimal, error) {
	inMin, err := ParseClock(timeIn)
	if err != nil {
		return decimal.Zero, err
	}
	outMin, err := ParseClock(timeOut)
	if err != nil {
		return decimal.Zero, err
	}

	elapsed := elapsedMinutes(inMin, outMin)
	nightMinutes := 0
	for i := 0; i < elapsed; i++ {
		minuteOfDay := (inMin + i) % MinutesPerDay
		if minuteOfDay >= nightDiffStartMinute || minuteOfDay < nightDiffEndMinute {
			nightMinutes++
		}
	}

	if nightMinutes == 0 {
		return decimal.Zero, nil
	}

	return decimal.NewFromInt(int64(nightMinutes)).
		Div(minutesPerHour).
		Mul(ratePerHour).
		Mul(decimal.NewFromInt(10)).
		Div(hundred).
		Round(2), nil
}
