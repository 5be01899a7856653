package utils

import "time"

// LastFullWeek returns the most recent complete Monday-to-Sunday week before
// now, as YYYY-MM-DD strings in loc. Run on a Monday it returns the week
// that ended yesterday.
func LastFullWeek(now time.Time, loc *time.Location) (string, string) {
	now = now.In(loc)

	// Walk back to the most recent Sunday strictly before today.
	daysBack := int(now.Weekday())
	if daysBack == 0 {
		daysBack = 7
	}
	sunday := now.AddDate(0, 0, -daysBack)
	monday := sunday.AddDate(0, 0, -6)

	return monday.Format("2006-01-02"), sunday.Format("2006-01-02")
}
