package openhours

import (
	"errors"
	"log/slog"
)

// OpenState is the open/closed verdict written to the output. It is empty
// when no verdict can be given.
type OpenState string

const (
	OpenUnknown OpenState = ""
	Open        OpenState = "open"
	Closed      OpenState = "closed"
)

// Outcome is everything known about one opening-hours string.
type Outcome struct {
	// Normalized is the cleaned up input.
	Normalized string
	// Valid is false only when the string failed lexical validation.
	Valid bool
	// Open is empty when Schedule is nil or has no rules.
	Open OpenState
	// Schedule is nil when Err is set.
	Schedule *WeeklySchedule
	// Err is a *LexicalError or a *StructuralError.
	Err error
	// Skipped holds *RangeSkipError values for time ranges that were
	// ignored. It never makes the outcome fail by itself.
	Skipped error
}

// Evaluate runs the whole pipeline for raw and asks whether the place is open
// at t on day.
func Evaluate(raw string, day Weekday, t ClockTime) Outcome {
	out := Outcome{Normalized: Normalize(raw)}

	schedule, skipped, err := parse(out.Normalized)
	out.Skipped = skipped.ErrorOrNil()
	if err != nil {
		out.Err = err
		out.Valid = !errors.Is(err, ErrLexical)
		slog.Debug("Opening hours rejected", "oh", out.Normalized, "error", err)
		return out
	}

	out.Valid = true
	out.Schedule = schedule
	if schedule.IsEmpty() {
		return out
	}
	if schedule.IsOpen(day, t) {
		out.Open = Open
	} else {
		out.Open = Closed
	}
	return out
}
