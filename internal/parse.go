package internal

import (
	"fmt"
	"time"

	"github.com/dromara/carbon/v2"
)

// Now returns the current local wall clock time, used for the query
// defaults.
func Now() *carbon.Carbon {
	return carbon.Now()
}

// DefaultWeekday is the weekday of now.
func DefaultWeekday(now *carbon.Carbon) time.Weekday {
	return now.StdTime().Weekday()
}

// DefaultTime formats now as "H:MM".
func DefaultTime(now *carbon.Carbon) string {
	return fmt.Sprintf("%d:%02d", now.Hour(), now.Minute())
}

// DefaultOutputPath names the output after the query day and the time of the
// run, e.g. "output_mo_9.5.csv".
func DefaultOutputPath(day string, now *carbon.Carbon) string {
	return fmt.Sprintf("output_%s_%d.%d.csv", day, now.Hour(), now.Minute())
}
