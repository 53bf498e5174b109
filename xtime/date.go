package xtime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	dateRe    = regexp.MustCompile(`^\s*(\d+):(\d+):(\d+):(\d+):([0-9.]+)\s*$`)
	calDateRe = regexp.MustCompile(`^\s*(\d+)([A-Za-z]{3})(\d+) at (\d+):(\d+):([0-9.]+)\s*$`)
	fitsRe    = regexp.MustCompile(`^\s*(\d+)-(\d+)-(\d+)(?:T(\d+):(\d+):([0-9.]+))?\s*$`)
)

// febDays returns the length of February. The mission calendar uses
// the Julian rule: every year divisible by four is a leap year.
func febDays(year int64) int64 {
	if year%4 == 0 {
		return 29
	}

	return 28
}

/***********************************************/

// SetDate assigns the instant from a date string in format tf
// (DATE, CALDATE, or FITS), interpreted in system ts. A FITS string
// may omit the time part, which then defaults to 00:00:00.
func (t *Time) SetDate(date string, ts TimeSys, tf TimeFormat, refInt int64, refFr float64) error {
	var year, day, hour, minute int64
	var second float64

	switch tf {
	case TIME_FMT_DATE:
		m := dateRe.FindStringSubmatch(date)
		if m == nil {
			return fmt.Errorf("%w: %q is not yyyy:ddd:hh:mm:ss", ErrBadFormat, date)
		}

		year, _ = strconv.ParseInt(m[1], 10, 64)
		day, _ = strconv.ParseInt(m[2], 10, 64)
		hour, _ = strconv.ParseInt(m[3], 10, 64)
		minute, _ = strconv.ParseInt(m[4], 10, 64)
		second, _ = strconv.ParseFloat(m[5], 64)

	case TIME_FMT_CALDATE:
		m := calDateRe.FindStringSubmatch(date)
		if m == nil {
			return fmt.Errorf("%w: %q is not yyyyMondd at hh:mm:ss", ErrBadFormat, date)
		}

		year, _ = strconv.ParseInt(m[1], 10, 64)
		day, _ = strconv.ParseInt(m[3], 10, 64)
		hour, _ = strconv.ParseInt(m[4], 10, 64)
		minute, _ = strconv.ParseInt(m[5], 10, 64)
		second, _ = strconv.ParseFloat(m[6], 64)

		mon := strings.ToUpper(m[2][:1]) + strings.ToLower(m[2][1:])
		found := false
		for i := 0; i < 12; i++ {
			if mon == _MONTH_NAMES[i] {
				found = true
				break
			}

			if i == 1 {
				day += febDays(year)
			} else {
				day += _DAYS_IN_MONTH[i]
			}
		}
		if !found {
			return fmt.Errorf("%w: unknown month %q", ErrBadFormat, m[2])
		}

	case TIME_FMT_FITS:
		m := fitsRe.FindStringSubmatch(date)
		if m == nil {
			return fmt.Errorf("%w: %q is not yyyy-mm-ddThh:mm:ss", ErrBadFormat, date)
		}

		year, _ = strconv.ParseInt(m[1], 10, 64)
		mon, _ := strconv.ParseInt(m[2], 10, 64)
		day, _ = strconv.ParseInt(m[3], 10, 64)
		if m[4] != "" {
			hour, _ = strconv.ParseInt(m[4], 10, 64)
			minute, _ = strconv.ParseInt(m[5], 10, 64)
			second, _ = strconv.ParseFloat(m[6], 64)
		}

		if mon < 1 || mon > 12 {
			return fmt.Errorf("%w: month %d out of range", ErrBadFormat, mon)
		}

		for i := int64(0); i < mon-1; i++ {
			if i == 1 {
				day += febDays(year)
			} else {
				day += _DAYS_IN_MONTH[i]
			}
		}

	default:
		return ErrBadFormat
	}

	day += (year-1972)*365 - 1
	day += (year - 1969) / 4
	day += MJD_1972
	second += float64(hour*3600 + minute*60)
	second *= SEC2DAY

	return t.SetSplit(day, second, ts, TIME_FMT_MJD, refInt, refFr)
}

/***********************************************/

// GetDate returns the instant as a date string in system ts and
// format tf (DATE, CALDATE, or FITS), with dec decimals in the
// seconds field. An instant during a leap second renders as second
// 60 of the preceding UTC day.
func (t *Time) GetDate(ts TimeSys, tf TimeFormat, dec int) (string, error) {
	if tf != TIME_FMT_DATE && tf != TIME_FMT_CALDATE && tf != TIME_FMT_FITS {
		return "", ErrBadFormat
	}
	if dec < 0 {
		dec = 0
	} else if dec > 9 {
		dec = 9
	}

	k, x, err := t.MjdSplit(ts)
	if err != nil {
		return "", err
	}

	if ts == TIME_SYS_UTC && t.leapflag {
		x -= SEC2DAY
	}
	for x < 0.0 {
		x++
		k--
	}
	for x >= 1.0 {
		x--
		k++
	}

	// Add half an ulp of the requested precision up front and take
	// it back out at the end, so 59.9999 does not print as 60.0.
	var hour, minute int64
	dsec := 0.5
	for i := 0; i < dec; i++ {
		dsec /= 10.0
	}

	day := k - MJD_1972
	second := x*DAY2SEC + dsec

	if ts == TIME_SYS_UTC && t.leapflag {
		second++
		hour = int64(second) / 3600
		if hour > 23 {
			hour--
		}
		second -= float64(hour * 3600)
		minute = int64(second) / 60
		if minute > 59 {
			minute--
		}
		second -= float64(minute * 60)
	} else {
		hour = int64(second) / 3600
		second -= float64(hour * 3600)
		minute = int64(second) / 60
		second -= float64(minute * 60)
	}

	if hour > 23 {
		hour -= 24
		day++
	}
	second -= dsec
	if second < 0.0 {
		second = 0.0
	}

	day++
	year := int64(1972)
	i := 0
	for day > 365 {
		if i == 0 {
			if day == 366 {
				break
			}
			day--
		}
		day -= 365
		year++
		i = (i + 1) % 4
	}

	var date string
	if dec > 0 {
		date = fmt.Sprintf("%4d:%03d:%02d:%02d:%0*.*f",
			year, day, hour, minute, dec+3, dec, second)
	} else {
		date = fmt.Sprintf("%4d:%03d:%02d:%02d:%02.0f",
			year, day, hour, minute, second)
	}

	if tf == TIME_FMT_CALDATE || tf == TIME_FMT_FITS {
		return monDay(date, tf), nil
	}

	return date, nil
}

// monDay rewrites a yyyy:ddd day-of-year string as a calendar date
// string, in CALDATE or FITS layout. The time-of-day part is carried
// over unchanged.
func monDay(date string, tf TimeFormat) string {
	var year, day int64
	fmt.Sscanf(date, "%d:%d", &year, &day)

	m := 0
	for {
		n := _DAYS_IN_MONTH[m]
		if m == 1 {
			n = febDays(year)
		}
		if day <= n {
			break
		}
		day -= n
		m++
	}

	if tf == TIME_FMT_CALDATE {
		return fmt.Sprintf("%04d%s%02d at %s", year, _MONTH_NAMES[m], day, date[9:])
	}

	return fmt.Sprintf("%04d-%02d-%02dT%s", year, m+1, day, date[9:])
}
