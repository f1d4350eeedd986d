package core

import "time"

// dateLayout is the expected format for event dates.
const dateLayout = "2006-01-02"

// DayFromDate derives the weekday name ("Monday".."Sunday") from a date
// string in YYYY-MM-DD format. Malformed dates yield an empty string
// rather than an error; the day is display-only.
func DayFromDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}
