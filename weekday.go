package openhours

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a day of the week in opening-hours order, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayCodes = [...]string{"mo", "tu", "we", "th", "fr", "sa", "su"}

var weekdayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Weekdays returns all seven weekdays in order. Ranges such as "mo-fr" are
// resolved as slices of this ordering.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// String returns the two-letter code, e.g. "mo".
func (d Weekday) String() string {
	if !d.valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayCodes[d]
}

func (d Weekday) valid() bool {
	return d >= Monday && d <= Sunday
}

// weekdayCode looks up an exact two-letter lowercase code.
func weekdayCode(s string) (Weekday, bool) {
	for i, code := range weekdayCodes {
		if code == s {
			return Weekday(i), true
		}
	}
	return 0, false
}

// ParseWeekday accepts a two-letter code ("Mo", "mo"), a three-letter
// abbreviation ("mon") or the full English name ("Monday"), case-insensitive.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := weekdayCode(s); ok {
		return d, nil
	}
	if len(s) >= 3 {
		for i, name := range weekdayNames {
			if strings.HasPrefix(name, s) {
				return Weekday(i), nil
			}
		}
	}
	return 0, fmt.Errorf("unknown weekday %q; want one of %s", s, strings.Join(weekdayCodes[:], ", "))
}

// WeekdayOf converts a time.Weekday, which starts on Sunday.
func WeekdayOf(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}
	return Weekday(d - 1)
}

// weekdayRange returns the inclusive slice of Weekdays from start to end.
// There is no wraparound past Sunday, so end before start is empty.
func weekdayRange(start, end Weekday) []Weekday {
	if end < start {
		return nil
	}
	return Weekdays()[start : end+1]
}
