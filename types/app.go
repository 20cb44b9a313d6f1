package types

import "time"

// NewAppRequest contains the configuration for creating a new App instance.
type NewAppRequest struct {
	// Required
	// Path of the ";" delimited input file, or an http(s) URL to fetch it
	// from. The opening hours are read from the fourth column.
	Input string

	// Required
	// Path of the output file. Rows are appended.
	Output string

	// Required
	// Weekday to evaluate, e.g. "mo".
	Day DayString

	// Required
	// Time to evaluate, e.g. "13:05".
	Time TimeString

	// Optional
	// How schedules are written: "text" (default), "json" or "yaml".
	Format string

	// Optional
	// Number of rows evaluated in parallel. Defaults to the number of CPUs.
	Workers int

	// Optional
	// Timeout for fetching a remote input. Defaults to 30 seconds.
	HTTPTimeout time.Duration
}
