package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runAxtime executes the root command against the built-in leap second
// table, with the search path pinned to an empty directory.
func runAxtime(t *testing.T, args ...string) string {
	t.Helper()

	t.Setenv("TIMING_DIR", t.TempDir())
	t.Setenv("ASC_DATA", "")

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())

	return strings.TrimSpace(out.String())
}

func TestConvertFITSToSeconds(t *testing.T) {
	out := runAxtime(t, "1998-01-01T00:00:30", "t", "f", "m", "s")
	assert.Equal(t, "30.000000000", out)
}

func TestConvertSecondsToUTCDate(t *testing.T) {
	out := runAxtime(t, "20483020.0", "m", "s", "u", "d3")
	assert.Equal(t, "1998:238:01:42:36.816", out)
}

func TestConvertHexOutput(t *testing.T) {
	out := runAxtime(t, "86400", "m", "s", "m", "h")
	assert.Equal(t, "0x  15180", out)
}

func TestConvertMissionDayOutput(t *testing.T) {
	out := runAxtime(t, "90061.5", "m", "s", "m", "n")
	assert.Equal(t, "1:1:1:1.5000000000", out)
}

func TestConvertReferenceMJD(t *testing.T) {
	out := runAxtime(t, "0", "t", "s", "51544", "t", "m")
	assert.Equal(t, "51544.000000000", out)
}

func TestFetchLeapsRebuildsTable(t *testing.T) {
	body := ` 1972 JAN  1 =JD 2441317.5  TAI-UTC=  10.0       S + (MJD - 41317.) X 0.0      S
 1972 JUL  1 =JD 2441499.5  TAI-UTC=  11.0       S + (MJD - 41317.) X 0.0      S
 1973 JAN  1 =JD 2441683.5  TAI-UTC=  12.0       S + (MJD - 41317.) X 0.0      S
`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	// the table search path and the download directory deliberately
	// differ; the rebuilt table must follow the download
	dir := t.TempDir()
	runAxtime(t, "fetch-leaps", "--url", srv.URL, "--dir", dir)

	require.Equal(t, 3, leaps.Len())
	assert.False(t, leaps.LastRefreshed().IsZero())
}

func TestConvertBadOutputCode(t *testing.T) {
	t.Setenv("TIMING_DIR", t.TempDir())
	t.Setenv("ASC_DATA", "")

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"100.0", "t", "s", "t", "z"})
	assert.Error(t, rootCmd.Execute())
}
