package cashflow

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// czechDateFormat is accepted on input because bank statements around here use it.
const czechDateFormat = "02.01.2006"

// Date represents a civil date with day-level granularity. There is no
// time-of-day and no time zone; two equal Dates are the same calendar day.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
// Out-of-range components wrap the usual time.Date way, so
// NewDate(2025, time.March, 0) is the last day of February 2025.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in its standard ISO format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or 1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// DaysInMonth returns the true number of days in the given month (28-31),
// leap-year aware. It is computed as the day number of "day zero" of the
// following month, so it is total for any real year/month pair.
func DaysInMonth(year int, month time.Month) int {
	return NewDate(year, month+1, 0).Day()
}

// ResolveDayInMonth returns the date of the given target day inside a month,
// clamping the day to the month's last day when the month is too short. A
// target of 31 inside February resolves to February 28 (29 in leap years),
// never to a day in March.
func ResolveDayInMonth(year int, month time.Month, targetDay int) Date {
	if max := DaysInMonth(year, month); targetDay > max {
		targetDay = max
	}
	return NewDate(year, month, targetDay)
}

// nextMonth advances the date to the following month keeping the same day
// number. When that day does not exist in the following month it falls back
// to day 1 of that month, not to the month's last day. This is the stepping
// behavior the recurrence expander relies on: the pointer only needs to land
// somewhere inside each successive month, the occurrence day itself is always
// recomputed with ResolveDayInMonth.
func (d Date) nextMonth() Date {
	y, m := d.y, d.m+1
	if m > time.December {
		y, m = y+1, time.January
	}
	if d.d > DaysInMonth(y, m) {
		return NewDate(y, m, 1)
	}
	return NewDate(y, m, d.d)
}

var relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwm])$`)

// ParseDate parses a Date from a string. It is lenient: it accepts the ISO
// format with or without zero padding ("2025-7-1"), the Czech day-first
// format ("13.10.2025"), and relative offsets from today ("0d", "-1d", "+2w",
// "-1m").
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)

	// Handle "0d" as a special case for today
	if str == "0d" {
		return Today(), nil
	}

	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			// This should not happen given the regex
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}
		today := Today()
		switch match[3] {
		case "d":
			return today.Add(num), nil
		case "w":
			return today.Add(num * 7), nil
		case "m":
			return NewDate(today.Year(), today.Month()+time.Month(num), today.Day()), nil
		}
	}

	if on, err := time.Parse(czechDateFormat, str); err == nil {
		return NewDate(on.Date()), nil
	}

	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q or %q: %w", str, DateFormat, czechDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParse is like ParseDate but panics on error.
func MustParse(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	// Keep this parsing strict, as it's for data files.
	// But not too strict, also supports 2025-7-1
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*j = NewDate(on.Date())
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
