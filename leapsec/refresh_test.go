package leapsec

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leapFileHead = ` 1961 JAN  1 =JD 2437300.5  TAI-UTC=   1.4228180 S + (MJD - 37300.) X 0.001296 S
 1972 JAN  1 =JD 2441317.5  TAI-UTC=  10.0       S + (MJD - 41317.) X 0.0      S
 1972 JUL  1 =JD 2441499.5  TAI-UTC=  11.0       S + (MJD - 41317.) X 0.0      S
 1973 JAN  1 =JD 2441683.5  TAI-UTC=  12.0       S + (MJD - 41317.) X 0.0      S
`

const leapFileTail = ` 2015 JUL  1 =JD 2457204.5  TAI-UTC=  36.0       S + (MJD - 41317.) X 0.0      S
 2017 JAN  1 =JD 2457754.5  TAI-UTC=  37.0       S + (MJD - 41317.) X 0.0      S
`

func writeLeapFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, LEAP_FILE_NAME)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestReadLeapFile(t *testing.T) {
	dir := t.TempDir()
	path := writeLeapFile(t, dir, leapFileHead)

	entries, err := readLeapFile(path)
	require.NoError(t, err)

	// the 1961 record is pre-1972 rubber-second era and is dropped
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Mjd: 41317, Leap: 10}, entries[0])
	assert.Equal(t, Entry{Mjd: 41499, Leap: 11}, entries[1])
	assert.Equal(t, Entry{Mjd: 41683, Leap: 12}, entries[2])
}

func TestReadLeapFileSkipsJunkLines(t *testing.T) {
	dir := t.TempDir()
	path := writeLeapFile(t, dir, "# comment\n"+leapFileHead+"not a record\n")

	entries, err := readLeapFile(path)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestReadLeapFileRejectsOutOfOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeLeapFile(t, dir, leapFileHead+
		` 1972 JUL  1 =JD 2441499.5  TAI-UTC=  11.0       S + (MJD - 41317.) X 0.0      S
`)

	_, err := readLeapFile(path)
	assert.Error(t, err)
}

func TestReadLeapFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeLeapFile(t, dir, "nothing useful\n")

	_, err := readLeapFile(path)
	assert.Error(t, err)
}

func TestNewReadsPinnedDir(t *testing.T) {
	dir := t.TempDir()
	writeLeapFile(t, dir, leapFileHead)

	tbl := New(WithDir(dir))
	require.Equal(t, 3, tbl.Len())
	assert.False(t, tbl.LastRefreshed().IsZero())
}

func TestNewSearchesEnvDirs(t *testing.T) {
	dir := t.TempDir()
	writeLeapFile(t, dir, leapFileHead)
	t.Setenv(ENV_TIMING_DIR, "")
	t.Setenv(ENV_DATA_DIR, dir)

	tbl := New()
	assert.Equal(t, 3, tbl.Len())
}

func TestRefreshAdditiveAppendsOnly(t *testing.T) {
	dir := t.TempDir()
	writeLeapFile(t, dir, leapFileHead)

	tbl := New(WithDir(dir))
	require.Equal(t, 3, tbl.Len())

	// the rewritten file starts over but also carries new entries
	writeLeapFile(t, dir, leapFileHead+leapFileTail)
	require.NoError(t, tbl.Refresh(0, REFRESH_ADDITIVE))

	require.Equal(t, 5, tbl.Len())
	assert.Equal(t, Entry{Mjd: 41683, Leap: 12}, tbl.At(2))
	assert.Equal(t, Entry{Mjd: 57204, Leap: 36}, tbl.At(3))
	assert.Equal(t, Entry{Mjd: 57754, Leap: 37}, tbl.At(4))
}

func TestRefreshHonorsThreshold(t *testing.T) {
	dir := t.TempDir()
	writeLeapFile(t, dir, leapFileHead)

	tbl := New(WithDir(dir))
	require.Equal(t, 3, tbl.Len())

	// a fresh table within the threshold is left alone
	writeLeapFile(t, dir, leapFileHead+leapFileTail)
	require.NoError(t, tbl.Refresh(time.Hour, REFRESH_ADDITIVE))
	assert.Equal(t, 3, tbl.Len())
}

func TestRefreshConfiguredThreshold(t *testing.T) {
	dir := t.TempDir()
	writeLeapFile(t, dir, leapFileHead)

	tbl := New(WithDir(dir), WithRefresh(time.Hour))
	require.Equal(t, 3, tbl.Len())

	// a negative threshold defers to the configured one, which the
	// just-loaded table is still within
	writeLeapFile(t, dir, leapFileHead+leapFileTail)
	require.NoError(t, tbl.Refresh(-1, REFRESH_ADDITIVE))
	assert.Equal(t, 3, tbl.Len())

	// forcing past it picks up the new entries
	require.NoError(t, tbl.Refresh(0, REFRESH_ADDITIVE))
	assert.Equal(t, 5, tbl.Len())
}

func TestRefreshFullReplacesTable(t *testing.T) {
	dir := t.TempDir()
	writeLeapFile(t, dir, leapFileHead)

	tbl := New(WithDir(dir))
	require.Equal(t, 3, tbl.Len())

	writeLeapFile(t, dir, leapFileHead+leapFileTail)
	require.NoError(t, tbl.Refresh(0, REFRESH_FULL))
	assert.Equal(t, 5, tbl.Len())
}

func TestRefreshFullNeverShrinks(t *testing.T) {
	dir := t.TempDir()
	writeLeapFile(t, dir, leapFileHead+leapFileTail)

	tbl := New(WithDir(dir))
	require.Equal(t, 5, tbl.Len())

	writeLeapFile(t, dir, leapFileHead)
	assert.Error(t, tbl.Refresh(0, REFRESH_FULL))
	assert.Equal(t, 5, tbl.Len())
}

func TestRefreshKeepsTableOnReadError(t *testing.T) {
	dir := t.TempDir()
	writeLeapFile(t, dir, leapFileHead)

	tbl := New(WithDir(dir))
	require.Equal(t, 3, tbl.Len())

	writeLeapFile(t, dir, "garbage\n")
	assert.Error(t, tbl.Refresh(0, REFRESH_FULL))
	assert.Equal(t, 3, tbl.Len())
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(leapFileHead + leapFileTail))
	}))
	defer srv.Close()

	dir := t.TempDir()
	require.NoError(t, Fetch(srv.URL, dir, zerolog.Nop()))

	entries, err := readLeapFile(filepath.Join(dir, LEAP_FILE_NAME))
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestFetchRejectsInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not a leap file</html>"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	assert.Error(t, Fetch(srv.URL, dir, zerolog.Nop()))

	_, err := os.Stat(filepath.Join(dir, LEAP_FILE_NAME))
	assert.True(t, os.IsNotExist(err))
}
