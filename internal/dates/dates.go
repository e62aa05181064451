// Package dates normalizes the date strings found in statements into civil
// calendar dates.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dayMonthYearDash  = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	monthDayYearSlash = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

	// Leading date at the start of lines such as "10 Jan 2024, 10:30 AM".
	leadingDayMonthYear = regexp.MustCompile(`^(\d{1,2})[\s-]+([A-Za-z]{3,9})[\s,-]+(\d{4})\b`)
	leadingMonthDayYear = regexp.MustCompile(`^([A-Za-z]{3,9})\s+(\d{1,2}),?\s+(\d{4})\b`)

	// Year-less markers such as "10 Jan" or "Jan 10, 10:30 AM".
	leadingDayMonth = regexp.MustCompile(`^(\d{1,2})[\s-]+([A-Za-z]{3,9})\b`)
	leadingMonthDay = regexp.MustCompile(`^([A-Za-z]{3,9})\s+(\d{1,2})\b`)

	// Years written next to a month name ("Jan 2024", "10 January, 2024",
	// "Mar 5, 2024") or inside a numeric date.
	namedYear   = regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b\.?,?\s+(?:\d{1,2},?\s+)?((?:19|20)\d{2})\b`)
	numericYear = regexp.MustCompile(`\b(?:\d{1,2}[-/]\d{1,2}[-/]((?:19|20)\d{2})|((?:19|20)\d{2})-\d{2}-\d{2})\b`)
)

// Layouts tried by the generic fallback, in order.
var layouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"Mon, 2 Jan 2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Parse converts raw into a calendar date at UTC midnight. It recognizes
// DD-MM-YYYY, then MM/DD/YYYY, then a fixed set of generic layouts. The
// second result is false when raw is not a valid date; out-of-range
// components are rejected rather than normalized.
func Parse(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if m := dayMonthYearDash.FindStringSubmatch(s); m != nil {
		return civil(m[3], m[2], m[1])
	}
	if m := monthDayYearSlash.FindStringSubmatch(s); m != nil {
		return civil(m[3], m[1], m[2])
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), true
		}
	}

	if m := leadingDayMonthYear.FindStringSubmatch(s); m != nil {
		return parseNamed(m[1] + " " + m[2] + " " + m[3])
	}
	if m := leadingMonthDayYear.FindStringSubmatch(s); m != nil {
		return parseNamed(m[2] + " " + m[1] + " " + m[3])
	}

	return time.Time{}, false
}

// ParseInYear is Parse, except that a leading day and month without a year
// ("10 Jan") resolve to that day in year. Components are still checked, so
// "29 Feb" fails outside leap years.
func ParseInYear(raw string, year int) (time.Time, bool) {
	if t, ok := Parse(raw); ok {
		return t, true
	}
	if year < 1000 || year > 9999 {
		return time.Time{}, false
	}

	s := strings.TrimSpace(raw)
	y := strconv.Itoa(year)
	if m := leadingDayMonth.FindStringSubmatch(s); m != nil {
		return parseNamed(m[1] + " " + m[2] + " " + y)
	}
	if m := leadingMonthDay.FindStringSubmatch(s); m != nil {
		return parseNamed(m[2] + " " + m[1] + " " + y)
	}
	return time.Time{}, false
}

// FindYear returns a year written as part of a date or a month heading in
// line, such as "Statement for January 2024".
func FindYear(line string) (int, bool) {
	if m := namedYear.FindStringSubmatch(line); m != nil {
		y, _ := strconv.Atoi(m[1])
		return y, true
	}
	if m := numericYear.FindStringSubmatch(line); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		y, _ := strconv.Atoi(raw)
		return y, true
	}
	return 0, false
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseNamed(s string) (time.Time, bool) {
	for _, layout := range []string{"2 Jan 2006", "2 January 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), true
		}
	}
	return time.Time{}, false
}

// civil builds a date from numeric components, rejecting values that
// time.Date would silently roll over.
func civil(year, month, day string) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 {
		return time.Time{}, false
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || int(t.Month()) != m {
		return time.Time{}, false
	}
	return t, true
}
