package core

import "time"

// DateLayout is the canonical calendar date layout: four-digit year,
// zero-padded month and day, dashes at indices 4 and 7.
const DateLayout = "2006-01-02"

// CurrentDate returns the current local calendar date formatted as
// YYYY-MM-DD. Reading the system clock is assumed to always succeed, so
// there is no error to report; it has no side effects beyond that read.
func CurrentDate() string {
	return time.Now().Format(DateLayout)
}
