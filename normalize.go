package openhours

import (
	"regexp"
	"strings"
)

var (
	aroundDash  = regexp.MustCompile(`\s*-\s*`)
	aroundColon = regexp.MustCompile(`\s*:\s*`)
)

// Normalize cleans up spacing and case so that
// " Mo -Fr    7:30-23: 00 ; Sa 09:00 -12:00 , 14:00-18:00 " becomes
// "mo-fr 7:30-23:00; sa 09:00-12:00, 14:00-18:00". It is idempotent.
func Normalize(s string) string {
	// trims and collapses every run of whitespace to one space
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, " ,", ",")
	s = strings.ReplaceAll(s, " ;", ";")
	s = aroundDash.ReplaceAllString(s, "-")
	s = aroundColon.ReplaceAllString(s, ":")
	return strings.ToLower(s)
}
