package leapsec

import (
	"time"

	"github.com/rs/zerolog"
)

/***** CONSTANT ********************************/

const (
	DAY2SEC float64 = 86400.0
	SEC2DAY float64 = 1.0 / DAY2SEC
	TAI2TT  float64 = 32.184 // TT - TAI in seconds
)

const (
	// LEAP_FILE_NAME is the fixed name of the external leap-second source.
	LEAP_FILE_NAME = "tai-utc.dat"

	// ENV_TIMING_DIR is the user-override directory searched first.
	ENV_TIMING_DIR = "TIMING_DIR"

	// ENV_DATA_DIR is the standard data directory searched second.
	ENV_DATA_DIR = "ASC_DATA"

	// DEFAULT_REFRESH is the staleness threshold after which Refresh
	// re-reads the source file (about two months).
	DEFAULT_REFRESH = 5000000 * time.Second
)

/***** STRUCT **********************************/

// Entry is one leap-second announcement: the MJD (UTC) at which the new
// cumulative TAI-UTC count takes effect.
type Entry struct {
	Mjd  int64
	Leap float64
}

/***********************************************/

type RefreshMode uint8

const (
	REFRESH_ADDITIVE RefreshMode = iota // append entries beyond the current last epoch
	REFRESH_FULL                        // discard and reload everything
)

/***********************************************/

/*
Table of cumulative TAI-UTC leap seconds, ordered by epoch and strictly
increasing in both columns.

A Table is loaded from tai-utc.dat when one can be found through
TIMING_DIR or ASC_DATA, and otherwise falls back to the compiled table
(1972 through 2017). A failed or partial read never shrinks the table.

A Table is not safe for concurrent mutation; sharing one between
goroutines is the caller's decision.
*/
type Table struct {
	entries       []Entry
	lastRefreshed time.Time
	dir           string        // when set, overrides the environment search
	refresh       time.Duration // threshold applied when Refresh is given a negative one
	logger        zerolog.Logger
}

/***** FUNCTION ********************************/

type Option func(*Table)

// WithLogger installs a logger for refresh and fetch events.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Table) { t.logger = logger }
}

// WithDir pins the directory searched for tai-utc.dat, bypassing the
// TIMING_DIR / ASC_DATA environment lookup.
func WithDir(dir string) Option {
	return func(t *Table) { t.dir = dir }
}

// WithRefresh sets the staleness threshold used when Refresh is called
// with a negative one.
func WithRefresh(threshold time.Duration) Option {
	return func(t *Table) { t.refresh = threshold }
}

/***********************************************/

// New builds a table and performs the initial load: the external source
// if one is found, the compiled fallback otherwise.
func New(opts ...Option) *Table {
	t := &Table{logger: zerolog.Nop(), refresh: DEFAULT_REFRESH}

	for _, opt := range opts {
		opt(t)
	}

	if err := t.Refresh(-1, REFRESH_ADDITIVE); err != nil {
		t.logger.Warn().Err(err).Msg("leap second table: initial load failed, keeping fallback")
	}

	return t
}

/***********************************************/

func (t *Table) Len() int {
	return len(t.entries)
}

/***********************************************/

// At returns entry i. The index must be in [0, Len()).
func (t *Table) At(i int) Entry {
	return t.entries[i]
}

/***********************************************/

// LastRefreshed reports when the table was last read successfully from
// the external source. The zero time means the compiled fallback is in
// effect and the next Refresh will retry the source regardless of the
// threshold.
func (t *Table) LastRefreshed() time.Time {
	return t.lastRefreshed
}

/***********************************************/

/*
Lookup returns the cumulative leap-second count in effect at the instant
mjdi+mjdf, expressed as a TT Modified Julian Day, together with a flag
reporting whether the instant falls inside an inserted leap second.

The scan runs backward from the newest entry. When subtracting the
candidate count places the instant before that entry's epoch, the
previous count applies; if the epoch then lies within one second ahead,
the instant is inside the inserted second itself.
*/
func (t *Table) Lookup(mjdi int64, mjdf float64) (leap float64, during bool) {
	n := len(t.entries)

	if n == 0 {
		return 0, false
	}

	x := float64(mjdi) + mjdf - TAI2TT*SEC2DAY
	j := int64(x)
	i := n - 1

	for j < t.entries[i].Mjd && i > 0 {
		i--
	}

	if x-t.entries[i].Leap*SEC2DAY < float64(t.entries[i].Mjd) && i > 0 {
		i--

		if float64(t.entries[i+1].Mjd)-x <= SEC2DAY {
			during = true
		}
	}

	return t.entries[i].Leap, during
}
