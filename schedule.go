// Package openhours parses the compact opening-hours notation used for
// business listings, such as "mo-fr 9:00-18:00; sa 10:00-14:00; su off",
// into a weekly schedule that can be asked whether a place is open at a
// given weekday and time.
//
// Strings go through a fixed pipeline:
//
//	Normalize -> Validate -> Parse -> (*WeeklySchedule).IsOpen
//
// Evaluate runs all of it for one string and reports the result as an
// Outcome.
package openhours

import (
	"log/slog"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/go-multierror"
)

// Rule pairs a set of weekdays with the intervals the place is open on each
// of them.
type Rule struct {
	Days      mapset.Set[Weekday]
	Intervals []Interval
}

// SortedDays returns the rule's days in week order.
func (r Rule) SortedDays() []Weekday {
	days := r.Days.ToSlice()
	slices.Sort(days)
	return days
}

// WeeklySchedule is the merged result of an opening-hours string. After
// parsing, no weekday appears in more than one rule.
type WeeklySchedule struct {
	Rules []Rule
}

// IsEmpty reports whether the schedule has no open days at all, e.g. for
// "mo-su off".
func (s *WeeklySchedule) IsEmpty() bool {
	return s == nil || len(s.Rules) == 0
}

// AlwaysOpen is the schedule for "24/7": every day from 00:00 to 23:59.
func AlwaysOpen() *WeeklySchedule {
	return &WeeklySchedule{
		Rules: []Rule{{
			Days:      newDaySet(Weekdays()...),
			Intervals: []Interval{{Start: 0, End: LastMinute}},
		}},
	}
}

// splitSegments splits on ";" keeping order; later segments override
// earlier ones.
func splitSegments(normalized string) []string {
	return strings.Split(normalized, ";")
}

// Parse validates a normalized opening-hours string and builds its weekly
// schedule. A *LexicalError is returned for unknown words and a
// *StructuralError when the segments cannot be resolved. Skipped time ranges
// are logged but not returned; use Evaluate to collect them.
func Parse(normalized string) (*WeeklySchedule, error) {
	schedule, _, err := parse(normalized)
	return schedule, err
}

func parse(normalized string) (*WeeklySchedule, *multierror.Error, error) {
	if err := Validate(normalized); err != nil {
		return nil, nil, err
	}
	if normalized == keyword24x7 {
		return AlwaysOpen(), nil, nil
	}

	var skipped *multierror.Error
	b := newScheduleBuilder()
	for _, seg := range splitSegments(normalized) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		tokens := tokenize(seg)

		if days, ok := resolveDayOff(seg, tokens); ok {
			slog.Debug("Days off", "segment", seg, "days", days)
			b.addDaysOff(days...)
			continue
		}

		match, ok := resolveDays(seg, tokens)
		if !ok {
			b.fail(&StructuralError{Segment: seg, Reason: "no days or time range recognized"})
			break
		}
		if !onlyTimeChars(match.remainder) {
			b.fail(&StructuralError{
				Segment: seg,
				Reason:  "unexpected text after the days; check the commas and semicolons",
			})
			break
		}

		intervals, err := parseTimeRanges(match.remainder)
		if err != nil {
			skipped = multierror.Append(skipped, err)
		}
		slog.Debug("Segment resolved", "segment", seg, "form", match.form, "days", match.days, "intervals", intervals)
		if b.addSegment(seg, match.days, intervals).err != nil {
			break
		}
	}

	schedule, err := b.Build()
	return schedule, skipped, err
}
