package blog

import (
	"strings"
	"time"
)

// Date is a parsed DD/MM/YYYY value. An unparseable string yields a
// Date with Valid == false rather than an error.
type Date struct {
	Time  time.Time
	Valid bool
	// Normalized reports that day or month was out of range and the
	// calendar rolled it over (31/02 becomes early March). Range is not
	// validated; the flag only lets callers report it.
	Normalized bool
}

// ParseDate reads day, month and year from the first three '/'-separated
// components using leading-integer semantics and builds a local-time date.
func ParseDate(s string) Date {
	parts := strings.Split(s, "/")
	if len(parts) < 3 {
		return Date{}
	}

	day, ok := parseLeadingInt(parts[0])
	if !ok {
		return Date{}
	}
	month, ok := parseLeadingInt(parts[1])
	if !ok {
		return Date{}
	}
	year, ok := parseLeadingInt(parts[2])
	if !ok {
		return Date{}
	}

	// Two-digit years belong to the 1900s.
	if year >= 0 && year <= 99 {
		year += 1900
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if ms := t.UnixMilli(); ms > maxDateMillis || ms < -maxDateMillis {
		return Date{}
	}

	return Date{
		Time:       t,
		Valid:      true,
		Normalized: t.Day() != day || int(t.Month()) != month || t.Year() != year,
	}
}

// Compare orders dates chronologically. Invalid dates sort before every
// valid one and are equal to each other.
func (d Date) Compare(other Date) int {
	switch {
	case !d.Valid && !other.Valid:
		return 0
	case !d.Valid:
		return -1
	case !other.Valid:
		return 1
	}
	return d.Time.Compare(other.Time)
}

func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

func (d Date) Equal(other Date) bool {
	return d.Compare(other) == 0
}

// maxDateMillis bounds representable dates to ±100,000,000 days around
// the Unix epoch (about year 275760).
const maxDateMillis = 8.64e15

// maxComponent is far beyond any component that can land inside the
// representable range, and small enough that accumulation cannot overflow.
const maxComponent = 1_000_000_000

func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	negative := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > maxComponent {
			return 0, false
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}

	if negative {
		n = -n
	}
	return n, true
}
