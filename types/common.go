package types

// DayString is a weekday as given on the command line, such as "mo" or
// "Monday".
type DayString string

// TimeString is a 24-hr format time "H:MM" such as "7:30".
type TimeString string

// Item represents a priority queue item with a value and priority.
type Item struct {
	Value    interface{}
	Priority float64
}
