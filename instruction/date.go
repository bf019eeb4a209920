package instruction

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the wire format for execution dates.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component, held in UTC.
//
// Construction goes through NewDate or ParseDate, both of which reject dates
// that do not round-trip through year/month/day decomposition (2025-02-30
// normalizes to 2025-03-02 and is therefore rejected rather than accepted).
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month, and day, rejecting combinations
// that overflow into a different calendar date.
func NewDate(year, month, day int) (Date, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, fmt.Errorf("date %04d-%02d-%02d does not exist", year, month, day)
	}

	return Date{t: t}, nil
}

// ParseDate parses a strict YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("date %q is not in YYYY-MM-DD format", s)
	}

	fields := make([]int, 3)

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, fmt.Errorf("date %q is not in YYYY-MM-DD format", s)
		}

		fields[i] = n
	}

	return NewDate(fields[0], fields[1], fields[2])
}

// DateOf truncates an instant to its calendar date in UTC.
func DateOf(t time.Time) Date {
	u := t.UTC()

	return Date{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// Time returns the date as a UTC midnight instant.
func (d Date) Time() time.Time {
	return d.t
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// MarshalJSON encodes the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON decodes a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("date must be a JSON string: %w", err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
