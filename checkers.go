package openhours

type ConditionCheck struct {
	fail bool
}

func CheckDay(r Rule, day Weekday) ConditionCheck {
	cc := ConditionCheck{fail: false}
	if !r.Days.Contains(day) {
		cc.fail = true
	}
	return cc
}

// CheckWithinInterval passes when any interval contains t. Intervals are
// scanned in order and the first hit wins.
func CheckWithinInterval(intervals []Interval, t ClockTime) ConditionCheck {
	cc := ConditionCheck{fail: true}
	for _, i := range intervals {
		if i.Contains(t) {
			cc.fail = false
			break
		}
	}
	return cc
}

// IsOpen reports whether the schedule has an interval containing t on day.
// Rule order does not matter once the schedule is merged.
func (s *WeeklySchedule) IsOpen(day Weekday, t ClockTime) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Rules {
		if c := CheckDay(r, day); c.fail {
			continue
		}
		if c := CheckWithinInterval(r.Intervals, t); !c.fail {
			return true
		}
	}
	return false
}

// IsOpenAt is IsOpen for string input, e.g. IsOpenAt("We", "12:00").
func (s *WeeklySchedule) IsOpenAt(day, t string) (bool, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return false, err
	}
	clock, err := ParseClock(t)
	if err != nil {
		return false, err
	}
	return s.IsOpen(d, clock), nil
}
