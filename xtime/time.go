package xtime

import (
	"errors"
	"math"

	"github.com/sot/chandra-time/leapsec"
)

var (
	ErrBadSystem   = errors.New("incorrect time system")
	ErrBadFormat   = errors.New("incorrect time format")
	ErrUnsupported = errors.New("unsupported conversion")
)

/***** Time ************************************/

// Time holds a single instant. Internally it is kept as MJD(TT),
// split into an integer day and a day fraction in [0, 1) so that
// sub-microsecond precision survives across decades. Conversions to
// the other systems and formats are derived on the way out.
type Time struct {
	mjdInt   int64   // integer part of MJD(TT)
	mjdFr    float64 // fractional part of MJD(TT), in [0, 1)
	timeZero float64 // clock correction term, in days

	mjdRefInt int64   // integer part of the reference epoch, MJD(TT)
	mjdRefFr  float64 // fractional part of the reference epoch

	leapflag bool    // the instant falls during an inserted leap second
	myLeaps  float64 // TAI - UTC at this instant
	refLeaps float64 // TAI - UTC at the reference epoch

	leaps *leapsec.Table
}

// New returns a Time at the default reference epoch (1998.0 TT).
// A nil table selects the shared default table.
func New(tbl *leapsec.Table) *Time {
	if tbl == nil {
		tbl = leapsec.Default()
	}

	t := &Time{
		mjdInt:    MJD_REF_INT,
		mjdFr:     MJD_REF_FR,
		mjdRefInt: MJD_REF_INT,
		mjdRefFr:  MJD_REF_FR,
		refLeaps:  REF_LEAPS,
		leaps:     tbl,
	}
	t.myLeaps, t.leapflag = tbl.Lookup(t.mjdInt, t.mjdFr)

	return t
}

// NewMET returns a Time met seconds past the default reference epoch.
func NewMET(tbl *leapsec.Table, met float64) *Time {
	t := New(tbl)
	t.Set(met, TIME_SYS_MET, TIME_FMT_SECS, 0, 0.0)

	return t
}

// NewValue returns a Time from a numeric value in system ts and
// format tf. A refInt > 1 overrides the reference epoch; the new
// epoch is taken to be expressed in system ts as well.
func NewValue(tbl *leapsec.Table, v float64, ts TimeSys, tf TimeFormat, refInt int64, refFr float64) (*Time, error) {
	t := New(tbl)
	err := t.Set(v, ts, tf, refInt, refFr)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// NewSplit is NewValue with the value pre-split into integer and
// fractional parts, for full precision on large inputs.
func NewSplit(tbl *leapsec.Table, vi int64, vf float64, ts TimeSys, tf TimeFormat, refInt int64, refFr float64) (*Time, error) {
	t := New(tbl)
	err := t.SetSplit(vi, vf, ts, tf, refInt, refFr)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// NewDate returns a Time parsed from a date string in format tf
// (DATE, CALDATE, or FITS), interpreted in system ts.
func NewDate(tbl *leapsec.Table, date string, ts TimeSys, tf TimeFormat, refInt int64, refFr float64) (*Time, error) {
	t := New(tbl)
	err := t.SetDate(date, ts, tf, refInt, refFr)
	if err != nil {
		return nil, err
	}

	return t, nil
}

/***********************************************/

// Set assigns the instant from a numeric value, splitting it into
// integer and fractional parts first so SECS inputs in the 1e8 range
// keep sub-microsecond precision. A magnitude beyond the integer
// range is passed through whole; it has no sub-second precision left
// to protect.
func (t *Time) Set(v float64, ts TimeSys, tf TimeFormat, refInt int64, refFr float64) error {
	var k int64
	x := v

	if math.Abs(v) < float64(int64(1)<<62) {
		k = int64(v)
		x = v - float64(k)
	}

	return t.SetSplit(k, x, ts, tf, refInt, refFr)
}

// SetSplit is the general numeric set operation. vi+vf is the value
// in system ts and format tf (SECS, JD, or MJD). A refInt > 1
// changes the reference epoch, which is assumed to be expressed in
// system ts too, and is converted to TT before being stored.
func (t *Time) SetSplit(vi int64, vf float64, ts TimeSys, tf TimeFormat, refInt int64, refFr float64) error {
	t.leapflag = false

	if refInt > 1 {
		switch ts {
		case TIME_SYS_UTC:
			ref := New(t.leaps)
			err := ref.SetSplit(refInt, refFr, TIME_SYS_UTC, TIME_FMT_MJD, 0, 0.0)
			if err != nil {
				return err
			}

			refInt, refFr, _ = ref.MjdSplit(TIME_SYS_TT)
		case TIME_SYS_TAI:
			refFr += TAI2TT * SEC2DAY
			if refFr < 0.0 {
				refFr++
				refInt--
			}
		}

		t.mjdRefInt = refInt
		t.mjdRefFr = refFr
		t.refLeaps, _ = t.leaps.Lookup(refInt, refFr)
	}

	// total accumulates the correction wrt TT, in seconds
	var total, x float64
	var j, k int64

	switch tf {
	case TIME_FMT_JD:
		vi -= 2400000
		vf -= 0.5
		fallthrough

	case TIME_FMT_MJD:
		k = vi
		x = vf

		switch ts {
		case TIME_SYS_UTC:
			n := t.leaps.Len()
			i := n - 1
			for k < t.leaps.At(i).Mjd && i > 0 {
				i--
			}

			// A UTC day that ends in a leap second runs from
			// 00:00:00 through 23:59:60; an instant within a second
			// of the insertion keeps the pre-insertion count, which
			// the backward scan already landed on.
			if i < n-1 && k+1 == t.leaps.At(i+1).Mjd && i > 0 &&
				float64(t.leaps.At(i+1).Mjd)-(float64(k)+x+t.timeZero) <= SEC2DAY {
				t.leapflag = true
			}

			total += t.leaps.At(i).Leap
			t.myLeaps = t.leaps.At(i).Leap
			total += TAI2TT
		case TIME_SYS_TAI:
			total += TAI2TT
		case TIME_SYS_TT, TIME_SYS_MET:
		default:
			return ErrBadSystem
		}

	case TIME_FMT_SECS:
		k = int64(float64(vi) * SEC2DAY)
		x = float64(vi)*SEC2DAY - float64(k)
		x += vf*SEC2DAY + t.mjdRefFr
		k += t.mjdRefInt

		// The reference epoch is stored in TT, so only UTC input
		// needs a correction here.
		switch ts {
		case TIME_SYS_UTC:
			total -= t.refLeaps

			i := t.leaps.Len() - 1
			j = int64(float64(k) + x + t.timeZero)
			for j < t.leaps.At(i).Mjd && i > 0 {
				i--
			}

			// The scan key carries no leap correction, so an instant
			// near an insertion can land one entry too far. Rebuild
			// the TT day with the previous entry's count: if it still
			// falls before the end of the inserted second, the
			// previous count applies, and an instant inside that
			// second gets flagged.
			if i > 0 {
				ttPre := float64(k) + x + t.timeZero +
					(t.leaps.At(i-1).Leap-t.refLeaps)*SEC2DAY
				leapEnd := float64(t.leaps.At(i).Mjd) +
					(TAI2TT+t.leaps.At(i).Leap)*SEC2DAY
				if ttPre < leapEnd {
					i--
					if leapEnd-ttPre <= SEC2DAY {
						t.leapflag = true
					}
				}
			}

			total += t.leaps.At(i).Leap
			t.myLeaps = t.leaps.At(i).Leap
		case TIME_SYS_TAI, TIME_SYS_TT, TIME_SYS_MET:
		default:
			return ErrBadSystem
		}

	default:
		return ErrBadFormat
	}

	x += total * SEC2DAY
	j = int64(x)
	t.mjdInt = k + j
	t.mjdFr = x - float64(j)
	if t.mjdFr < 0.0 {
		t.mjdFr++
		t.mjdInt--
	}

	// For UTC input the leap second count was set above
	if ts != TIME_SYS_UTC {
		t.myLeaps, t.leapflag = t.leaps.Lookup(t.mjdInt, t.mjdFr+t.timeZero)
	}

	return nil
}

// SetTZero installs a clock correction of tz seconds and updates the
// leap second count for the shifted instant.
func (t *Time) SetTZero(tz float64) {
	t.timeZero = tz * SEC2DAY
	t.myLeaps, t.leapflag = t.leaps.Lookup(t.mjdInt, t.mjdFr+t.timeZero)
}

// TZero returns the clock correction in seconds.
func (t *Time) TZero() float64 {
	return t.timeZero * DAY2SEC
}

/***********************************************/

// MET returns seconds past the reference epoch.
func (t *Time) MET() float64 {
	return (float64(t.mjdInt-t.mjdRefInt) + (t.mjdFr - t.mjdRefFr) + t.timeZero) * DAY2SEC
}

// TT returns TT seconds past the reference epoch.
func (t *Time) TT() float64 {
	return t.MET()
}

// TAI returns TAI seconds past the reference epoch.
func (t *Time) TAI() float64 {
	return t.MET()
}

// UTC returns UTC seconds past the reference epoch. The two epochs
// may carry different leap second counts, so the difference shifts
// by the leap seconds inserted between them.
func (t *Time) UTC() float64 {
	return t.MET() - t.myLeaps + t.refLeaps
}

// Get returns the instant as a single float64 in system ts and
// format tf (SECS, JD, or MJD).
func (t *Time) Get(ts TimeSys, tf TimeFormat) (float64, error) {
	switch tf {
	case TIME_FMT_SECS:
		switch ts {
		case TIME_SYS_MET:
			return t.MET(), nil
		case TIME_SYS_TT:
			return t.TT(), nil
		case TIME_SYS_TAI:
			return t.TAI(), nil
		case TIME_SYS_UTC:
			return t.UTC(), nil
		default:
			return 0.0, ErrBadSystem
		}

	case TIME_FMT_JD, TIME_FMT_MJD:
		v := t.timeZero
		if tf == TIME_FMT_JD {
			v += JD_MJD0
		}

		switch ts {
		case TIME_SYS_UTC:
			v -= (t.myLeaps + TAI2TT) * SEC2DAY
		case TIME_SYS_TAI:
			v -= TAI2TT * SEC2DAY
		case TIME_SYS_MET, TIME_SYS_TT:
		default:
			return 0.0, ErrBadSystem
		}

		v += float64(t.mjdInt) + t.mjdFr

		return v, nil

	default:
		return 0.0, ErrBadFormat
	}
}

// MjdSplit returns the MJD in system ts split into integer and
// fractional parts. The TT and TAI variants leave the clock
// correction out, matching the whole-value accessors only when the
// correction is zero.
func (t *Time) MjdSplit(ts TimeSys) (int64, float64, error) {
	switch ts {
	case TIME_SYS_TT:
		return t.mjdInt, t.mjdFr, nil

	case TIME_SYS_TAI:
		k := t.mjdInt
		x := t.mjdFr - TAI2TT*SEC2DAY
		if x < 0.0 {
			x++
			k--
		}

		return k, x, nil

	case TIME_SYS_UTC:
		k := t.mjdInt
		x := t.mjdFr + t.timeZero - (TAI2TT+t.myLeaps)*SEC2DAY
		if x < 0.0 {
			x++
			k--
		} else if x >= 1.0 {
			x--
			k++
		}

		return k, x, nil

	case TIME_SYS_MET:
		return 0, 0.0, ErrUnsupported

	default:
		return 0, 0.0, ErrBadSystem
	}
}

// Leaps returns TAI - UTC at this instant.
func (t *Time) Leaps() float64 {
	return t.myLeaps
}

// RefLeaps returns TAI - UTC at the reference epoch.
func (t *Time) RefLeaps() float64 {
	return t.refLeaps
}

// DuringLeap reports whether the instant falls during an inserted
// leap second.
func (t *Time) DuringLeap() bool {
	return t.leapflag
}

// MjdRef returns the reference epoch as MJD(TT), split into integer
// and fractional parts.
func (t *Time) MjdRef() (int64, float64) {
	return t.mjdRefInt, t.mjdRefFr
}
