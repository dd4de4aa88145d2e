package markethours

import "time"

// IST is the Indian Standard Time location (UTC+5:30), the default zone all
// analysis timestamps are normalized to.
var IST = time.FixedZone("IST", 5*3600+30*60)

// Normalize converts t into loc so analysis timestamps compare across runs.
// Zero times pass through unchanged.
func Normalize(t time.Time, loc *time.Location) time.Time {
	if t.IsZero() || loc == nil {
		return t
	}
	return t.In(loc)
}

// IsWeekday returns true if t is Mon-Fri in its own location.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// DateOnly truncates t to midnight in loc.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

// BusinessDaysBetween counts weekdays in the closed interval [start, end],
// both truncated to dates in loc. Weekends are excluded; no holiday calendar
// is applied. Returns 0 if end precedes start.
func BusinessDaysBetween(start, end time.Time, loc *time.Location) int {
	from := DateOnly(start, loc)
	to := DateOnly(end, loc)
	if to.Before(from) {
		return 0
	}
	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsWeekday(d) {
			count++
		}
	}
	return count
}
