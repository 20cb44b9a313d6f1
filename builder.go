package openhours

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// scheduleBuilder folds segments into rules in the order they appear. Later
// segments take their days away from earlier rules; days off are applied
// last no matter where they were declared.
type scheduleBuilder struct {
	err     error
	rules   []Rule
	daysOff mapset.Set[Weekday]
}

func newScheduleBuilder() *scheduleBuilder {
	return &scheduleBuilder{
		daysOff: newDaySet(),
	}
}

func newDaySet(days ...Weekday) mapset.Set[Weekday] {
	return mapset.NewThreadUnsafeSet(days...)
}

// without returns a new rule list with days removed from every rule. Rules
// left with no days are dropped.
func without(rules []Rule, days mapset.Set[Weekday]) []Rule {
	kept := make([]Rule, 0, len(rules))
	for _, r := range rules {
		remaining := r.Days.Difference(days)
		if remaining.Cardinality() == 0 {
			continue
		}
		kept = append(kept, Rule{Days: remaining, Intervals: r.Intervals})
	}
	return kept
}

// addSegment overrides the given days with intervals. A segment with no
// intervals fails the whole build.
func (b *scheduleBuilder) addSegment(seg string, days []Weekday, intervals []Interval) *scheduleBuilder {
	if b.err != nil {
		return b
	}

	set := newDaySet(days...)
	b.rules = without(b.rules, set)

	if len(intervals) == 0 {
		b.err = &StructuralError{
			Segment: seg,
			Reason:  "no valid time range; check the commas and semicolons",
		}
		return b
	}

	if set.Cardinality() > 0 {
		b.rules = append(b.rules, Rule{Days: set, Intervals: intervals})
	}
	return b
}

// addDaysOff records days to drop from every rule at build time.
func (b *scheduleBuilder) addDaysOff(days ...Weekday) *scheduleBuilder {
	b.daysOff = b.daysOff.Union(newDaySet(days...))
	return b
}

// fail stops the build; only the first failure is kept.
func (b *scheduleBuilder) fail(err error) *scheduleBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Build applies the days off and returns the schedule, or the first error
// recorded while adding segments.
func (b *scheduleBuilder) Build() (*WeeklySchedule, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &WeeklySchedule{Rules: without(b.rules, b.daysOff)}, nil
}
