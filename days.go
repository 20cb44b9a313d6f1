package openhours

import "log/slog"

type dayForm int

const (
	formDayRange dayForm = iota + 1
	formSingleDay
	formDayList
	formTimeOnly
)

func (f dayForm) String() string {
	switch f {
	case formDayRange:
		return "day range"
	case formSingleDay:
		return "single day"
	case formDayList:
		return "day list"
	case formTimeOnly:
		return "time only"
	default:
		return "unknown"
	}
}

// dayMatch is the result of resolving the leading day part of a segment.
type dayMatch struct {
	form      dayForm
	days      []Weekday
	remainder string
}

// resolveDays tries each day form in order and returns the first match:
//
//	mo-fr 9:00-17:00        day range
//	mo 9:00-17:00           single day
//	mo, we,fr 9:00-17:00    day list
//	9:00-17:00              time only, every day
func resolveDays(seg string, tokens []token) (dayMatch, bool) {
	for _, resolve := range []func(string, []token) (dayMatch, bool){
		matchDayRange,
		matchSingleDay,
		matchDayList,
		matchTimeOnly,
	} {
		if m, ok := resolve(seg, tokens); ok {
			return m, true
		}
	}
	return dayMatch{}, false
}

func matchDayRange(seg string, tokens []token) (dayMatch, bool) {
	if len(tokens) < 3 ||
		tokens[0].kind != tokenWeekday ||
		!tokens[1].is(tokenSeparator, "-") ||
		tokens[2].kind != tokenWeekday {
		return dayMatch{}, false
	}
	days := weekdayRange(tokens[0].day, tokens[2].day)
	if len(days) == 0 {
		slog.Debug("Day range runs backwards, no days selected", "segment", seg)
	}
	return dayMatch{
		form:      formDayRange,
		days:      days,
		remainder: seg[tokens[2].end():],
	}, true
}

func matchSingleDay(seg string, tokens []token) (dayMatch, bool) {
	if len(tokens) < 3 ||
		tokens[0].kind != tokenWeekday ||
		!tokens[1].is(tokenSeparator, " ") ||
		tokens[2].kind != tokenNumber {
		return dayMatch{}, false
	}
	return dayMatch{
		form:      formSingleDay,
		days:      []Weekday{tokens[0].day},
		remainder: seg[tokens[0].end():],
	}, true
}

// matchDayList accepts day codes each followed by an optional comma and an
// optional space, up to the first number. "ph" may appear in the list but
// selects no weekday.
func matchDayList(seg string, tokens []token) (dayMatch, bool) {
	var days []Weekday
	i := 0
	for i < len(tokens) {
		switch {
		case tokens[i].kind == tokenWeekday:
			days = append(days, tokens[i].day)
		case tokens[i].is(tokenKeyword, keywordPH):
			slog.Debug("Public holidays are not supported, ignoring", "segment", seg)
		default:
			return dayMatch{}, false
		}
		i++
		if i < len(tokens) && tokens[i].is(tokenSeparator, ",") {
			i++
		}
		if i < len(tokens) && tokens[i].is(tokenSeparator, " ") {
			i++
		}
		if i < len(tokens) && tokens[i].kind == tokenNumber {
			return dayMatch{
				form:      formDayList,
				days:      days,
				remainder: seg[tokens[i].pos:],
			}, true
		}
	}
	return dayMatch{}, false
}

// matchTimeOnly accepts a segment opening with H:MM or HH:MM.
func matchTimeOnly(seg string, tokens []token) (dayMatch, bool) {
	if len(tokens) < 3 ||
		tokens[0].kind != tokenNumber ||
		!tokens[1].is(tokenSeparator, ":") ||
		tokens[2].kind != tokenNumber {
		return dayMatch{}, false
	}
	hour, minute := tokens[0].text, tokens[2].text
	if len(hour) == 2 && hour[0] > '2' {
		return dayMatch{}, false
	}
	if len(minute) != 2 || minute[0] > '5' {
		return dayMatch{}, false
	}
	return dayMatch{
		form:      formTimeOnly,
		days:      Weekdays(),
		remainder: seg,
	}, true
}

// resolveDayOff handles "sa, su off" style segments. It reports false when
// the segment has no "off" keyword. Days are codes or a-b ranges; anything
// else before "off" is ignored.
func resolveDayOff(seg string, tokens []token) ([]Weekday, bool) {
	off := -1
	for i, t := range tokens {
		if t.is(tokenKeyword, keywordOff) {
			off = i
			break
		}
	}
	if off < 0 {
		return nil, false
	}

	var days []Weekday
	before := tokens[:off]
	for i := 0; i < len(before); i++ {
		t := before[i]
		switch {
		case t.kind == tokenWeekday:
			if i+2 < len(before) && before[i+1].is(tokenSeparator, "-") && before[i+2].kind == tokenWeekday {
				days = append(days, weekdayRange(t.day, before[i+2].day)...)
				i += 2
				continue
			}
			days = append(days, t.day)
		case t.kind == tokenSeparator:
		default:
			slog.Debug("Ignoring token in day off declaration", "segment", seg, "token", t.text)
		}
	}
	return days, true
}
