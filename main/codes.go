package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sot/chandra-time/xtime"
)

/***** FUNCTION ********************************/

// ReadSys interprets a time system code: m[et], t[t], ta[i] or a,
// and u[tc]. Codes are case-insensitive and may be abbreviated to a
// single character.
func ReadSys(code string) (xtime.TimeSys, error) {
	c := strings.ToLower(code)
	if c == "" {
		return 0, fmt.Errorf("empty time system code")
	}

	switch c[0] {
	case 'm':
		return xtime.TIME_SYS_MET, nil
	case 't':
		if len(c) > 1 && c[1] == 'a' {
			return xtime.TIME_SYS_TAI, nil
		}

		return xtime.TIME_SYS_TT, nil
	case 'a':
		return xtime.TIME_SYS_TAI, nil
	case 'u':
		return xtime.TIME_SYS_UTC, nil
	default:
		return 0, fmt.Errorf("unrecognized time system code %q", code)
	}
}

// ReadForm interprets a time format code: s, h, n, j, m, d[n], c[n],
// or f[n]. The h and n codes select hexadecimal seconds and mission
// day number renditions of SECS; a digit appended to d, c, or f
// requests that many decimals in the seconds field.
func ReadForm(code string) (tf xtime.TimeFormat, hexfmt, nmday bool, dec int, err error) {
	c := strings.ToLower(code)
	if c == "" {
		err = fmt.Errorf("empty time format code")
		return
	}

	switch c[0] {
	case 's':
		tf = xtime.TIME_FMT_SECS
	case 'j':
		tf = xtime.TIME_FMT_JD
	case 'm':
		tf = xtime.TIME_FMT_MJD
	case 'd':
		tf = xtime.TIME_FMT_DATE
	case 'c':
		tf = xtime.TIME_FMT_CALDATE
	case 'f':
		tf = xtime.TIME_FMT_FITS
	case 'h':
		tf = xtime.TIME_FMT_SECS
		hexfmt = true
	case 'n':
		tf = xtime.TIME_FMT_SECS
		nmday = true
	default:
		err = fmt.Errorf("unrecognized time format code %q", code)
		return
	}

	switch tf {
	case xtime.TIME_FMT_DATE, xtime.TIME_FMT_CALDATE, xtime.TIME_FMT_FITS:
		if len(c) > 1 && c[1] >= '0' && c[1] <= '9' {
			dec, _ = strconv.Atoi(c[1:])
		}
	}

	return
}

/***********************************************/

// inputTime holds a parsed command line time argument.
type inputTime struct {
	str    string            // date string, when ch is set
	val    float64           // numeric value, otherwise
	tSys   xtime.TimeSys
	tForm  xtime.TimeFormat
	ch     bool              // input was a date string
	mjdi   int64
	mjdf   float64
	nextat int               // index of the first output argument
}

// parseInput interprets the leading command line arguments: the time
// itself (three tokens for CALDATE), the input system and format
// codes, and an optional reference MJD. A date string declares its
// own format, so an explicit format code only overrides the numeric
// interpretations.
func parseInput(args []string) (*inputTime, error) {
	in := &inputTime{tSys: xtime.TIME_SYS_MET, tForm: xtime.TIME_FMT_SECS}
	istrt := 1
	hexfmt := false
	nmday := false

	switch {
	// CALDATE spans three tokens: "2001Jan01 at 12:00:00"
	case len(args) >= 3 && strings.EqualFold(args[1], "at"):
		in.str = args[0] + " " + args[1] + " " + args[2]
		in.tForm = xtime.TIME_FMT_CALDATE
		in.ch = true
		istrt = 3

	case len(args[0]) > 7 && args[0][4] == '-' && args[0][7] == '-':
		in.str = args[0]
		in.tForm = xtime.TIME_FMT_FITS
		in.ch = true

	case strings.Contains(args[0], ":"):
		lead, _ := strconv.Atoi(args[0][:strings.Index(args[0], ":")])
		if lead > 366 && lead < 1900 {
			nmday = true
		} else {
			in.str = args[0]
			in.tForm = xtime.TIME_FMT_DATE
			in.ch = true
		}
	}

	if len(args) < istrt+4 {
		return nil, fmt.Errorf("not enough arguments")
	}

	var err error
	in.tSys, err = ReadSys(args[istrt])
	if err != nil {
		return nil, err
	}

	tf, h, n, _, err := ReadForm(args[istrt+1])
	if err != nil {
		return nil, err
	}
	if !in.ch {
		in.tForm = tf
		hexfmt = h
		nmday = nmday || n
	}

	// An optional reference MJD sits between the input and output
	// specifications
	in.nextat = istrt + 2
	if len(args) > istrt+4 {
		in.mjdi, err = strconv.ParseInt(args[istrt+2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad reference MJD %q", args[istrt+2])
		}
		in.nextat++

		if len(args) > istrt+5 {
			in.mjdf, err = strconv.ParseFloat(args[istrt+3], 64)
			if err != nil {
				return nil, fmt.Errorf("bad reference MJD fraction %q", args[istrt+3])
			}
			in.nextat++
		}
	}

	if in.ch {
		return in, nil
	}

	switch {
	case hexfmt:
		jt, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(args[0]), "0x"), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("bad hexadecimal time %q", args[0])
		}
		in.val = float64(jt)

	case nmday:
		var day, h, m int64
		var s float64
		if _, err := fmt.Sscanf(args[0], "%d:%d:%d:%g", &day, &h, &m, &s); err != nil {
			return nil, fmt.Errorf("bad mission day time %q", args[0])
		}
		in.val = s + float64(86400*day+3600*h+60*m)

	default:
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad time value %q", args[0])
		}
		in.val = v
	}

	return in, nil
}
