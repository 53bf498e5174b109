package xtime

import "github.com/sot/chandra-time/leapsec"

/***** RangeList *******************************/

// RangeList is an ordered list of disjoint, non-empty intervals,
// with boolean operations over it. Members are kept sorted by start
// time and never overlap.
type RangeList struct {
	ranges    []Interval
	listRange Interval
	empty     bool
}

// NewRangeList returns a list holding a single interval, or an empty
// list when the interval is empty.
func NewRangeList(iv Interval) *RangeList {
	l := &RangeList{ranges: []Interval{iv}, listRange: iv}
	l.setListRange()

	return l
}

// NewEmptyRangeList returns a list with no members. A nil table
// selects the shared default table.
func NewEmptyRangeList(tbl *leapsec.Table) *RangeList {
	return &RangeList{
		listRange: NewIntervalMET(tbl, 0.0, -1.0),
		empty:     true,
	}
}

// Copy returns an independent copy of the list.
func (l *RangeList) Copy() *RangeList {
	return &RangeList{
		ranges:    append([]Interval(nil), l.ranges...),
		listRange: l.listRange,
		empty:     l.empty,
	}
}

// AndLists returns the intersection of two lists. Each member of the
// shorter list is intersected with a copy of the longer one and the
// partial results are merged back together.
func AndLists(a, b *RangeList) *RangeList {
	if a.IsEmpty() || b.IsEmpty() {
		out := a.Copy()
		out.ranges = nil
		out.empty = true
		out.listRange.Reset(0.0, -1.0)

		return out
	}

	l1, l2 := a, b
	if len(l1.ranges) < len(l2.ranges) {
		l1, l2 = l2, l1
	}

	if len(l2.ranges) == 1 {
		out := l1.Copy()
		out.AndRange(&l2.ranges[0])

		return out
	}

	build := l1.Copy()
	build.AndRange(&l2.ranges[0])
	for i := 1; i < len(l2.ranges); i++ {
		scratch := l1.Copy()
		scratch.AndRange(&l2.ranges[i])
		build.OrList(scratch)
	}

	return build
}

/***********************************************/

// AndRange intersects the list with a single interval.
func (l *RangeList) AndRange(T *Interval) {
	if l.empty {
		return
	}

	tstart := T.METStart()
	tstop := T.METStop()
	zap := false
	var startin, stopin, startafter, stopafter int

	switch {
	case T.IsEmpty():
		zap = true

	case tstart <= l.listRange.METStart() && tstop >= l.listRange.METStop():
		return

	case tstop < l.listRange.METStart(), tstart > l.listRange.METStop():
		zap = true

	default:
		// Locate both endpoints in the member list; indices are
		// stored one-based so zero can mean "not found yet"
		for i := range l.ranges {
			if startin == 0 {
				switch l.ranges[i].InRange(tstart) {
				case RANGE_WITHIN:
					startin = i + 1
				case RANGE_AFTER:
					startafter = i + 1
				}
			}
			if stopin == 0 {
				switch l.ranges[i].InRange(tstop) {
				case RANGE_WITHIN:
					stopin = i + 1
				case RANGE_AFTER:
					stopafter = i + 1
				}
			}
		}

		if startin != 0 {
			startin--
			l.ranges[startin].SetStartMET(tstart)
		} else if stopin == 0 && startafter == stopafter {
			// Both endpoints fall in the same gap
			zap = true
		} else {
			startin = startafter
		}

		if !zap {
			if stopin != 0 {
				stopin--
				l.ranges[stopin].SetStopMET(tstop)
			} else {
				stopin = stopafter - 1
			}
		}
	}

	if zap {
		l.ranges = l.ranges[:0]
		l.setListRange()

		return
	}

	l.ranges = append([]Interval(nil), l.ranges[startin:stopin+1]...)
	l.setListRange()
}

// OrRange merges a single interval into the list.
func (l *RangeList) OrRange(T *Interval) {
	if T.IsEmpty() {
		return
	}

	if l.empty {
		l.ranges = append(l.ranges[:0], *T)
		l.listRange = *T
		l.empty = false

		return
	}

	tstart := T.METStart()
	tstop := T.METStop()
	var before, after, straddle bool
	var between int
	var startin, stopin, startafter, stopafter int

	switch {
	case tstart <= l.listRange.METStart() && tstop >= l.listRange.METStop():
		straddle = true

	case tstop < l.listRange.METStart():
		before = true

	case tstart > l.listRange.METStop():
		after = true

	default:
		for i := range l.ranges {
			if startin == 0 {
				switch l.ranges[i].InRange(tstart) {
				case RANGE_WITHIN:
					startin = i + 1
				case RANGE_AFTER:
					startafter = i + 1
				}
			}
			if stopin == 0 {
				switch l.ranges[i].InRange(tstop) {
				case RANGE_WITHIN:
					stopin = i + 1
				case RANGE_AFTER:
					stopafter = i + 1
				}
			}
		}

		if startin != 0 {
			// Contained in a single member: nothing to do
			if startin == stopin {
				return
			}
			startin--
		} else if stopin == 0 && startafter == stopafter {
			between = stopafter
		} else {
			startin = startafter
			l.ranges[startin].SetStartMET(tstart)
		}

		if stopin != 0 {
			stopin--
		} else if between == 0 && stopafter != 0 {
			stopin = stopafter - 1
			l.ranges[stopin].SetStopMET(tstop)
		}
	}

	l.empty = false

	switch {
	case before:
		ntr := make([]Interval, 0, len(l.ranges)+1)
		ntr = append(ntr, *T)
		ntr = append(ntr, l.ranges...)
		l.ranges = ntr

	case after:
		l.ranges = append(l.ranges, *T)

	case straddle:
		l.ranges = append(l.ranges[:0], *T)

	case between != 0:
		ntr := make([]Interval, 0, len(l.ranges)+1)
		ntr = append(ntr, l.ranges[:between]...)
		ntr = append(ntr, *T)
		ntr = append(ntr, l.ranges[between:]...)
		l.ranges = ntr

	default:
		// Collapse members startin through stopin into one
		l.ranges[stopin].SetStartMET(l.ranges[startin].METStart())
		l.ranges = append(l.ranges[:startin], l.ranges[stopin:]...)
	}

	l.setListRange()
}

// OrList merges another list into this one.
func (l *RangeList) OrList(other *RangeList) {
	if other.empty {
		return
	}

	if l.empty {
		l.ranges = append(l.ranges[:0], other.ranges...)
		l.listRange = other.listRange
		l.empty = false

		return
	}

	for i := range other.ranges {
		l.OrRange(&other.ranges[i])
	}
}

// NotList complements the list over the bounding interval: the gaps
// between the members, clipped to the bound, become the new members.
func (l *RangeList) NotList(bound *Interval) {
	if l.empty {
		if !bound.IsEmpty() {
			l.ranges = append(l.ranges[:0], *bound)
			l.listRange = *bound
			l.empty = false
		}

		return
	}

	// Build the gap list between open sentinels, then clip
	n := len(l.ranges)
	ntr := make([]Interval, n+1)
	for i := range ntr {
		ntr[i] = l.ranges[0]
	}

	ntr[0].SetStartMET(1000.0)
	for i := 0; i < n; i++ {
		ntr[i].SetStop(l.ranges[i].Start())
		ntr[i+1].SetStart(l.ranges[i].Stop())
	}
	ntr[n].SetStopMET(1.0e20)

	l.ranges = ntr
	l.setListRange()
	l.AndRange(bound)
}

// setListRange drops empty members and recomputes the overall range.
func (l *RangeList) setListRange() {
	kept := l.ranges[:0]
	for i := range l.ranges {
		if !l.ranges[i].IsEmpty() {
			kept = append(kept, l.ranges[i])
		}
	}
	l.ranges = kept

	if len(l.ranges) == 0 {
		l.empty = true
		l.listRange.Reset(0.0, -1.0)

		return
	}

	l.empty = false
	l.listRange.Reset(l.ranges[0].METStart(), l.ranges[len(l.ranges)-1].METStop())
}

/***********************************************/

// IsInRange reports whether MET second t falls in one of the members.
func (l *RangeList) IsInRange(t float64) bool {
	for i := range l.ranges {
		if l.ranges[i].InRange(t) == RANGE_WITHIN {
			return true
		}
	}

	return false
}

// FindRange returns the member containing MET second t, or nil.
func (l *RangeList) FindRange(t float64) *Interval {
	for i := range l.ranges {
		if l.ranges[i].InRange(t) == RANGE_WITHIN {
			iv := l.ranges[i]

			return &iv
		}
	}

	return nil
}

// TotalTime returns the summed length of all members, in seconds.
func (l *RangeList) TotalTime() float64 {
	tt := 0.0
	if !l.empty {
		for i := range l.ranges {
			tt += l.ranges[i].TotalTime()
		}
	}

	return tt
}

// NumRanges returns the number of members.
func (l *RangeList) NumRanges() int {
	return len(l.ranges)
}

// Range returns member i.
func (l *RangeList) Range(i int) Interval {
	return l.ranges[i]
}

// ListRange returns the interval spanning the whole list.
func (l *RangeList) ListRange() Interval {
	return l.listRange
}

// IsEmpty reports whether the list has no members.
func (l *RangeList) IsEmpty() bool {
	return l.empty
}
