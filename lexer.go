package openhours

import "strings"

type tokenKind int

const (
	tokenInvalid tokenKind = iota
	tokenWeekday
	tokenNumber
	tokenKeyword
	tokenSeparator
)

const (
	separators  = " ,:;-"
	keywordPH   = "ph"
	keywordOff  = "off"
	keyword24x7 = "24/7"
)

type token struct {
	kind tokenKind
	text string
	pos  int // byte offset in the tokenized string
	day  Weekday
}

func (t token) end() int {
	return t.pos + len(t.text)
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

// tokenize splits s into words and single-character separator tokens.
// Empty words between adjacent separators are dropped.
func tokenize(s string) []token {
	var tokens []token
	start := 0
	flush := func(end int) {
		if end > start {
			tokens = append(tokens, classify(s[start:end], start))
		}
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(separators, s[i]) < 0 {
			continue
		}
		flush(i)
		tokens = append(tokens, token{kind: tokenSeparator, text: s[i : i+1], pos: i})
		start = i + 1
	}
	flush(len(s))
	return tokens
}

func classify(word string, pos int) token {
	t := token{text: word, pos: pos}
	if d, ok := weekdayCode(word); ok {
		t.kind = tokenWeekday
		t.day = d
		return t
	}
	switch {
	case word == keywordPH, word == keywordOff, word == keyword24x7:
		t.kind = tokenKeyword
	case isShortNumber(word):
		t.kind = tokenNumber
	default:
		t.kind = tokenInvalid
	}
	return t
}

// isShortNumber matches one or two decimal digits.
func isShortNumber(s string) bool {
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Validate checks that every word of a normalized opening-hours string comes
// from the known vocabulary: weekday codes, "ph", "off", "24/7" and numbers
// of at most two digits. It does not check the structure.
func Validate(normalized string) error {
	for _, t := range tokenize(normalized) {
		if t.kind == tokenInvalid {
			return &LexicalError{Token: t.text, Offset: t.pos}
		}
	}
	return nil
}
