package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// MonthFromToken resolves a month name or 3-letter abbreviation.
func MonthFromToken(tok string) (time.Month, bool) {
	m, ok := monthsByName[strings.ToLower(strings.TrimSpace(tok))]
	return m, ok
}

// CanonicalPeriod normalizes a Mon-YYYY label's casing: "jan-2024" -> "Jan-2024".
func CanonicalPeriod(period string) string {
	if period == "" {
		return period
	}
	return strings.ToUpper(period[:1]) + strings.ToLower(period[1:])
}

// ParsePeriod splits a canonical Mon-YYYY label into month and year.
func ParsePeriod(period string) (time.Month, int, error) {
	parts := strings.SplitN(period, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed period %q", period)
	}
	month, ok := MonthFromToken(parts[0])
	if !ok {
		return 0, 0, fmt.Errorf("unknown month in period %q", period)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed year in period %q", period)
	}
	return month, year, nil
}

// FormatPeriod renders a month/year pair as Mon-YYYY.
func FormatPeriod(month time.Month, year int) string {
	return fmt.Sprintf("%s-%04d", month.String()[:3], year)
}

// ParseDate parses DD-MM-YYYY or DD-Mon-YYYY challan dates. Slashes are
// accepted as separators and normalized to hyphens first.
func ParseDate(s string) (time.Time, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "/", "-")
	for _, layout := range []string{"02-01-2006", "02-Jan-2006"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// FormatDate renders a date as DD-MM-YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}

// DueDate computes the statutory deadline for a payment period. The general
// rule is dayOfMonth of the month following the period month; the carve-out
// month instead falls due on April 30 of the period year. All three challan
// types share this shape and differ only in the parameters.
func DueDate(month time.Month, year, dayOfMonth int, carveOut time.Month) time.Time {
	if month == carveOut {
		return time.Date(year, time.April, 30, 0, 0, 0, 0, time.Local)
	}
	// time.Date normalizes month 13 to January of the next year.
	return time.Date(year, month+1, dayOfMonth, 0, 0, 0, 0, time.Local)
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DelayDays returns the whole days between due date and submission, rounded
// up, clamped at zero when submission was on or before the due date.
func DelayDays(submitted, due time.Time) int {
	diff := atMidnight(submitted).Sub(atMidnight(due))
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// DelayOrDash renders the delay as digits, or "-" when not delayed.
func DelayOrDash(submitted, due time.Time) string {
	if d := DelayDays(submitted, due); d > 0 {
		return strconv.Itoa(d)
	}
	return "-"
}
