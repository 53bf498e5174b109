package leapsec

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"
	"time"
)

/***** VARIABLE ********************************/

// One announcement per line, e.g.
//
//	1999 JAN  1 =JD 2451179.5  TAI-UTC=  32.0       S + (MJD - 41317.) X 0.0      S
//
// Only the year, the MJD inside the =JD field and the cumulative count
// are consumed; anything else on the line is ignored and lines that do
// not match are skipped.
var leapLineRe = regexp.MustCompile(`^\s*(\d{4})\s+[A-Za-z]{3}\s+1\s+=JD\s+24(\d{5})\.5\s+TAI-UTC=\s*([0-9.]+)\s+S`)

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

/***** FUNCTION ********************************/

// Default returns the lazily-built process-wide table, for callers that
// do not manage their own.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = New()
	})

	return defaultTable
}

/***********************************************/

/*
Refresh re-reads the external source if more than threshold has elapsed
since the last successful read; a negative threshold selects the one
configured with WithRefresh. In REFRESH_ADDITIVE mode only entries
beyond the current last epoch are appended; REFRESH_FULL replaces the
whole table. Failure to read or parse leaves the table exactly as it
was; if no source exists and the table is still empty, the compiled
fallback is installed.
*/
func (t *Table) Refresh(threshold time.Duration, mode RefreshMode) error {
	if threshold < 0 {
		threshold = t.refresh
	}

	if len(t.entries) > 0 && time.Since(t.lastRefreshed) <= threshold {
		return nil
	}

	path, err := t.locate()

	if err != nil {
		if len(t.entries) == 0 {
			t.entries = append([]Entry(nil), fallbackEntries...)
			t.logger.Debug().Msg("leap second table: no source file, using compiled fallback")
		}

		return err
	}

	loaded, err := readLeapFile(path)

	if err != nil {
		t.logger.Warn().Err(err).Str("path", path).Msg("leap second table: read failed, keeping current table")
		return err
	}

	switch mode {
	case REFRESH_FULL:
		// Fewer entries than before means a truncated or damaged file.
		if len(loaded) < len(t.entries) {
			return fmt.Errorf("leap second file %s: %d entries, have %d; not shrinking", path, len(loaded), len(t.entries))
		}

		t.entries = loaded
	default:
		for _, e := range loaded {
			last := len(t.entries) - 1

			if last < 0 || (e.Mjd > t.entries[last].Mjd && e.Leap > t.entries[last].Leap) {
				t.entries = append(t.entries, e)
			}
		}
	}

	t.lastRefreshed = time.Now()
	t.logger.Debug().Str("path", path).Int("entries", len(t.entries)).Msg("leap second table refreshed")
	return nil
}

/***********************************************/

// locate finds tai-utc.dat in the pinned directory, or through the
// user-override and standard data directories.
func (t *Table) locate() (string, error) {
	var dirs []string

	if t.dir != "" {
		dirs = []string{t.dir}
	} else {
		for _, env := range []string{ENV_TIMING_DIR, ENV_DATA_DIR} {
			if dir := os.Getenv(env); dir != "" {
				dirs = append(dirs, dir)
			}
		}
	}

	for _, dir := range dirs {
		path := filepath.Join(dir, LEAP_FILE_NAME)

		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%s not found", LEAP_FILE_NAME)
}

/***********************************************/

func readLeapFile(path string) ([]Entry, error) {
	fp, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer fp.Close()

	var entries []Entry
	scanner := bufio.NewScanner(fp)

	for scanner.Scan() {
		matched := leapLineRe.FindStringSubmatch(scanner.Text())

		if matched == nil {
			continue
		}

		year, _ := strconv.Atoi(matched[1])

		if year <= 1970 {
			continue
		}

		mjd, _ := strconv.ParseInt(matched[2], 10, 64)
		leap, _ := strconv.ParseFloat(matched[3], 64)

		// Both columns must keep increasing; a line that breaks the
		// order marks a damaged file.
		if n := len(entries); n > 0 && (mjd <= entries[n-1].Mjd || leap <= entries[n-1].Leap) {
			return nil, fmt.Errorf("%s: entries out of order at MJD %d", path, mjd)
		}

		entries = append(entries, Entry{Mjd: mjd, Leap: leap})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: no leap second records", path)
	}

	return entries, nil
}
