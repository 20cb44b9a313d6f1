package openhours

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ClockTime is minutes since midnight. 1440 stands for the literal "24:00";
// interval ends may go past it for ranges that wrap midnight.
type ClockTime int

const (
	// EndOfDay is the "24:00" marker.
	EndOfDay ClockTime = 24 * 60
	// LastMinute is 23:59, the end of the "24/7" interval.
	LastMinute ClockTime = EndOfDay - 1
)

var validClock = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5]?[0-9])$`)

var errNotTimeRange = errors.New("want start-end")

// ParseClock parses "H:MM" or "HH:MM" on a 24 hour clock. "24:00" is not
// accepted here; only time range ends may use it.
func ParseClock(s string) (ClockTime, error) {
	m := validClock.FindStringSubmatch(s)
	if len(m) == 0 {
		return 0, fmt.Errorf("cannot parse %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q: %w", m[1], err)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q: %w", m[2], err)
	}
	return ClockTime(hour*60 + minute), nil
}

func (t ClockTime) Hour() int {
	return int(t) / 60
}

func (t ClockTime) Minute() int {
	return int(t) % 60
}

// String formats as "HH:MM". Wrapped ends keep counting hours, so
// 02:00 on the next day is "26:00".
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Interval is an open period within a day. End may exceed EndOfDay when the
// range wraps past midnight.
type Interval struct {
	Start ClockTime
	End   ClockTime
}

func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// Contains reports start <= t <= end. Times after midnight never match the
// tail of a wrapped interval since t is never expressed past EndOfDay.
func (i Interval) Contains(t ClockTime) bool {
	return i.Start <= t && t <= i.End
}

// Wraps reports whether the interval runs past midnight.
func (i Interval) Wraps() bool {
	return i.End > EndOfDay
}

// onlyTimeChars reports whether s holds nothing but digits and the
// separators allowed inside a time range list.
func onlyTimeChars(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && !strings.ContainsRune(",:- ", c) {
			return false
		}
	}
	return true
}

// parseTimeRanges parses a comma separated list such as
// "7:30-12:00, 13:45-18:00". Malformed ranges are skipped and returned as
// *RangeSkipError values in the second result; the caller decides whether an
// empty result is fatal.
func parseTimeRanges(s string) ([]Interval, error) {
	if !onlyTimeChars(s) {
		return nil, nil
	}

	var intervals []Interval
	var skipped *multierror.Error
	for _, r := range strings.Split(s, ",") {
		r = strings.TrimSpace(r)
		interval, err := parseTimeRange(r)
		if err != nil {
			skip := &RangeSkipError{Range: r, Err: err}
			slog.Debug("Skipping time range", "range", r, "error", err)
			skipped = multierror.Append(skipped, skip)
			continue
		}
		intervals = append(intervals, interval)
	}
	return intervals, skipped.ErrorOrNil()
}

func parseTimeRange(r string) (Interval, error) {
	parts := strings.Split(r, "-")
	if len(parts) != 2 {
		return Interval{}, errNotTimeRange
	}

	start, err := ParseClock(parts[0])
	if err != nil {
		return Interval{}, err
	}

	var end ClockTime
	if parts[1] == "24:00" {
		end = EndOfDay
	} else {
		end, err = ParseClock(parts[1])
		if err != nil {
			return Interval{}, err
		}
	}

	// "23:00-02:00" closes on the next day
	if end < start {
		end += EndOfDay
	}
	return Interval{Start: start, End: end}, nil
}
