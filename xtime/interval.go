package xtime

import "github.com/sot/chandra-time/leapsec"

/***** Interval ********************************/

// RangePos locates an instant relative to an interval.
type RangePos int8

const (
	RANGE_BEFORE RangePos = -1
	RANGE_WITHIN RangePos = 0
	RANGE_AFTER  RangePos = 1
)

// Interval is a span between two instants, compared in MET seconds.
// An interval is empty when its start does not precede its stop, or
// when either endpoint is at or before MET zero. Intervals have
// value semantics; assignment copies.
type Interval struct {
	start Time
	stop  Time
	empty bool
}

// NewInterval builds an interval from two instants.
func NewInterval(start, stop *Time) Interval {
	iv := Interval{start: *start, stop: *stop}
	iv.setEmpty()

	return iv
}

// NewIntervalMET builds an interval from two MET seconds values.
// A nil table selects the shared default table.
func NewIntervalMET(tbl *leapsec.Table, tstart, tstop float64) Interval {
	if tbl == nil {
		tbl = leapsec.Default()
	}

	iv := Interval{start: *NewMET(tbl, tstart), stop: *NewMET(tbl, tstop)}
	iv.setEmpty()

	return iv
}

func (iv *Interval) setEmpty() {
	t1 := iv.start.MET()
	t2 := iv.stop.MET()
	iv.empty = t1 >= t2 || t1 <= 0.0 || t2 <= 0.0
}

/***********************************************/

// SetStart replaces the start instant.
func (iv *Interval) SetStart(t *Time) {
	iv.start = *t
	iv.setEmpty()
}

// SetStop replaces the stop instant.
func (iv *Interval) SetStop(t *Time) {
	iv.stop = *t
	iv.setEmpty()
}

// SetStartMET moves the start to MET second t.
func (iv *Interval) SetStartMET(t float64) {
	iv.start.Set(t, TIME_SYS_MET, TIME_FMT_SECS, 0, 0.0)
	iv.setEmpty()
}

// SetStopMET moves the stop to MET second t.
func (iv *Interval) SetStopMET(t float64) {
	iv.stop.Set(t, TIME_SYS_MET, TIME_FMT_SECS, 0, 0.0)
	iv.setEmpty()
}

// Reset moves both endpoints, given in MET seconds.
func (iv *Interval) Reset(tstart, tstop float64) {
	iv.start.Set(tstart, TIME_SYS_MET, TIME_FMT_SECS, 0, 0.0)
	iv.stop.Set(tstop, TIME_SYS_MET, TIME_FMT_SECS, 0, 0.0)
	iv.setEmpty()
}

/***********************************************/

// InRange locates MET second t relative to the interval. Everything
// is after an empty interval.
func (iv *Interval) InRange(t float64) RangePos {
	if t < iv.start.MET() {
		return RANGE_BEFORE
	} else if t > iv.stop.MET() {
		return RANGE_AFTER
	} else if iv.empty {
		return RANGE_AFTER
	}

	return RANGE_WITHIN
}

// InRangeTime locates an instant relative to the interval.
func (iv *Interval) InRangeTime(t *Time) RangePos {
	return iv.InRange(t.MET())
}

// TotalTime returns the interval length in seconds, zero if empty.
func (iv *Interval) TotalTime() float64 {
	if iv.empty {
		return 0.0
	}

	return iv.stop.MET() - iv.start.MET()
}

// IsEmpty reports whether the interval is empty.
func (iv *Interval) IsEmpty() bool {
	return iv.empty
}

// METStart returns the start in MET seconds.
func (iv *Interval) METStart() float64 {
	return iv.start.MET()
}

// METStop returns the stop in MET seconds.
func (iv *Interval) METStop() float64 {
	return iv.stop.MET()
}

// Start returns the start instant.
func (iv *Interval) Start() *Time {
	t := iv.start

	return &t
}

// Stop returns the stop instant.
func (iv *Interval) Stop() *Time {
	t := iv.stop

	return &t
}
