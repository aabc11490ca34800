package attendance

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

type Flag string

const (
	FlagNone   Flag = ""
	FlagLate   Flag = "Late"
	FlagAbsent Flag = "Absent"
)

// ParseFlag accepts any casing; "none" and blank clear the flag.
func ParseFlag(s string) (Flag, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "-":
		return FlagNone, true
	case "late":
		return FlagLate, true
	case "absent":
		return FlagAbsent, true
	default:
		return FlagNone, false
	}
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusHalfDay Status = "Half Day"
	StatusAbsent  Status = "Absent"
)

// HalfDayBelow is the worked time under which a day counts as a half day.
const HalfDayBelow = 4 * 60

type Record struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	Department      string `json:"department"`
	Date            string `json:"date"`
	InTime          string `json:"in_time"`
	OutTime         string `json:"out_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Duration        string `json:"duration"`
	Flag            Flag   `json:"flag"`
	Status          Status `json:"status"`
}

// ComputeDuration returns minutes worked between two HH:MM clock readings.
// An out time earlier than the in time is an overnight shift.
func ComputeDuration(in, out string) (int, bool) {
	start, ok := validator.ParseClock(in)
	if !ok {
		return 0, false
	}
	end, ok := validator.ParseClock(out)
	if !ok {
		return 0, false
	}
	if end < start {
		end += 24 * 60
	}
	return end - start, true
}

// FormatDuration renders minutes as "8h 05m"; zero renders as "-".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// DeriveFlag marks a missing in time as absent and an in time after
// lateAfter (HH:MM) as late.
func DeriveFlag(in, lateAfter string) Flag {
	start, ok := validator.ParseClock(in)
	if !ok {
		return FlagAbsent
	}
	if threshold, ok := validator.ParseClock(lateAfter); ok && start > threshold {
		return FlagLate
	}
	return FlagNone
}

func DeriveStatus(minutes int, flag Flag) Status {
	switch {
	case flag == FlagAbsent || minutes <= 0:
		return StatusAbsent
	case minutes < HalfDayBelow:
		return StatusHalfDay
	default:
		return StatusPresent
	}
}

// Recompute refreshes the derived duration and status from the clock times.
func (r Record) Recompute() Record {
	minutes, ok := ComputeDuration(r.InTime, r.OutTime)
	if !ok {
		minutes = 0
	}
	r.DurationMinutes = minutes
	r.Duration = FormatDuration(minutes)
	r.Status = DeriveStatus(minutes, r.Flag)
	return r
}
