package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Accepted textual forms of a calendar date, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2/1/2006", // DD/MM/YYYY, leading zeros optional
}

// Date is a calendar date without time of day. The zero value means the date is unknown.
type Date struct {
	civil.Date
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date{civil.DateOf(t)}
}

// NewDate builds a date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{civil.Date{Year: year, Month: month, Day: day}}
}

// ParseDate parses ISO (YYYY-MM-DD) and DD/MM/YYYY forms.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), true
		}
	}
	return Date{}, false
}

// IsZero reports whether the date is unknown.
func (d Date) IsZero() bool {
	return d.Date == civil.Date{}
}

// Before reports whether d is strictly earlier than other. Unknown dates sort first.
func (d Date) Before(other Date) bool {
	switch {
	case d.IsZero():
		return !other.IsZero()
	case other.IsZero():
		return false
	}
	return d.Date.Before(other.Date)
}

// Label renders the date as D/M/YYYY.
func (d Date) Label() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", d.Day, int(d.Month), d.Year)
}

// MarshalJSON writes YYYY-MM-DD, or null for an unknown date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Date.String())
}

// UnmarshalJSON accepts the supported layouts. Anything else written by older
// clients (null, free text, numbers, objects) yields an unknown date.
func (d *Date) UnmarshalJSON(data []byte) error {
	*d = Date{}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if parsed, ok := ParseDate(s); ok {
		*d = parsed
	}
	return nil
}
