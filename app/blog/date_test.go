package blog

import (
	"testing"
	"time"
)

func TestParseDate_LeapDay(t *testing.T) {
	date := ParseDate("29/02/2020")

	if !date.Valid {
		t.Fatal("Expected 29/02/2020 to be valid")
	}
	if date.Time.Year() != 2020 {
		t.Errorf("Expected year 2020, got %d", date.Time.Year())
	}
	if date.Time.Month() != time.February {
		t.Errorf("Expected February, got %s", date.Time.Month())
	}
	if date.Time.Day() != 29 {
		t.Errorf("Expected day 29, got %d", date.Time.Day())
	}
	if date.Normalized {
		t.Error("A real leap day should not be reported as normalized")
	}
}

func TestParseDate_LocalMidnight(t *testing.T) {
	date := ParseDate("17/01/2018")

	expected := time.Date(2018, time.January, 17, 0, 0, 0, 0, time.Local)
	if !date.Time.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, date.Time)
	}
	if date.Time.Location() != time.Local {
		t.Errorf("Expected local location, got %v", date.Time.Location())
	}
}

func TestParseDate_SingleDigitComponents(t *testing.T) {
	date := ParseDate("1/2/2018")

	if !date.Valid {
		t.Fatal("Expected single digit day and month to parse")
	}
	if date.Time.Day() != 1 || date.Time.Month() != time.February {
		t.Errorf("Expected 1 February, got %d %s", date.Time.Day(), date.Time.Month())
	}
}

func TestParseDate_SameStringIsEqual(t *testing.T) {
	a := ParseDate("12/04/2018")
	b := ParseDate("12/04/2018")

	if !a.Equal(b) {
		t.Error("Two parses of the same string should be equal")
	}
	if !a.Time.Equal(b.Time) {
		t.Error("Two parses of the same string should produce the same instant")
	}
}

func TestParseDate_OutOfRangeIsNormalized(t *testing.T) {
	tests := []struct {
		input string
		year  int
		month time.Month
		day   int
	}{
		{"31/02/2018", 2018, time.March, 3},
		{"01/13/2018", 2019, time.January, 1},
		{"00/01/2018", 2017, time.December, 31},
	}

	for _, tt := range tests {
		date := ParseDate(tt.input)
		if !date.Valid {
			t.Errorf("%s: expected a valid, normalized date", tt.input)
			continue
		}
		if !date.Normalized {
			t.Errorf("%s: expected Normalized to be set", tt.input)
		}
		if date.Time.Year() != tt.year || date.Time.Month() != tt.month || date.Time.Day() != tt.day {
			t.Errorf("%s: expected %d-%s-%d, got %v", tt.input, tt.year, tt.month, tt.day, date.Time)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"12/04",
		"abc/04/2018",
		"12/xx/2018",
		"12/04/year",
		"2018-04-12",
		"99999999999999999999/01/2018",
		"01/99999999999999999999/2018",
		"01/01/300000",
		"01/01/-300000",
	}

	for _, input := range inputs {
		if date := ParseDate(input); date.Valid {
			t.Errorf("Expected %q to be invalid, got %v", input, date.Time)
		}
	}
}

func TestParseDate_LeadingIntegerSemantics(t *testing.T) {
	tests := []struct {
		input string
		day   int
	}{
		{" 7/03/2018", 7},
		{"7th/03/2018", 7},
		{"+7/03/2018", 7},
		{"12/04/2018/extra", 12},
	}

	for _, tt := range tests {
		date := ParseDate(tt.input)
		if !date.Valid {
			t.Errorf("%q: expected valid date", tt.input)
			continue
		}
		if date.Time.Day() != tt.day {
			t.Errorf("%q: expected day %d, got %d", tt.input, tt.day, date.Time.Day())
		}
	}
}

func TestDate_Compare(t *testing.T) {
	older := ParseDate("17/01/2018")
	newer := ParseDate("12/04/2018")
	invalid := ParseDate("not a date")

	if !older.Before(newer) {
		t.Error("17/01/2018 should be before 12/04/2018")
	}
	if !newer.After(older) {
		t.Error("12/04/2018 should be after 17/01/2018")
	}
	if !invalid.Before(older) {
		t.Error("Invalid dates should order before valid dates")
	}
	if !invalid.Equal(ParseDate("")) {
		t.Error("Invalid dates should be equal to each other")
	}
}

func TestParseDate_RangeLimits(t *testing.T) {
	if date := ParseDate("12/09/275760"); !date.Valid {
		t.Error("Expected a day inside the representable range to be valid")
	}
	if date := ParseDate("15/09/275760"); date.Valid {
		t.Errorf("Expected a date past the representable range to be invalid, got %v", date.Time)
	}
}

func TestParseDate_TwoDigitYear(t *testing.T) {
	tests := []struct {
		input string
		year  int
	}{
		{"01/01/18", 1918},
		{"01/01/0", 1900},
		{"01/01/99", 1999},
		{"01/01/100", 100},
	}

	for _, tt := range tests {
		date := ParseDate(tt.input)
		if !date.Valid {
			t.Errorf("%q: expected valid date", tt.input)
			continue
		}
		if date.Time.Year() != tt.year {
			t.Errorf("%q: expected year %d, got %d", tt.input, tt.year, date.Time.Year())
		}
		if date.Normalized {
			t.Errorf("%q: two-digit year should not be reported as normalized", tt.input)
		}
	}
}
