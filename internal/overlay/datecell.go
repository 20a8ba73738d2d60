package overlay

import "time"

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// DateCell holds the last announced date.
type DateCell struct {
	last Date
	set  bool
}

// Exchange stores d and returns the previously stored date. ok is false if
// no date was stored yet.
func (c *DateCell) Exchange(d Date) (prev Date, ok bool) {
	prev, ok = c.last, c.set
	c.last, c.set = d, true
	return prev, ok
}

// Reset forgets the stored date.
func (c *DateCell) Reset() {
	*c = DateCell{}
}
