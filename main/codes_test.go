package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sot/chandra-time/xtime"
)

func TestReadSys(t *testing.T) {
	tests := []struct {
		code string
		want xtime.TimeSys
	}{
		{"m", xtime.TIME_SYS_MET},
		{"met", xtime.TIME_SYS_MET},
		{"MET", xtime.TIME_SYS_MET},
		{"t", xtime.TIME_SYS_TT},
		{"tt", xtime.TIME_SYS_TT},
		{"ta", xtime.TIME_SYS_TAI},
		{"tai", xtime.TIME_SYS_TAI},
		{"a", xtime.TIME_SYS_TAI},
		{"u", xtime.TIME_SYS_UTC},
		{"utc", xtime.TIME_SYS_UTC},
		{"U", xtime.TIME_SYS_UTC},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ts, err := ReadSys(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts)
		})
	}

	_, err := ReadSys("z")
	assert.Error(t, err)
	_, err = ReadSys("")
	assert.Error(t, err)
}

func TestReadForm(t *testing.T) {
	tests := []struct {
		code   string
		want   xtime.TimeFormat
		hexfmt bool
		nmday  bool
		dec    int
	}{
		{"s", xtime.TIME_FMT_SECS, false, false, 0},
		{"j", xtime.TIME_FMT_JD, false, false, 0},
		{"m", xtime.TIME_FMT_MJD, false, false, 0},
		{"h", xtime.TIME_FMT_SECS, true, false, 0},
		{"n", xtime.TIME_FMT_SECS, false, true, 0},
		{"d", xtime.TIME_FMT_DATE, false, false, 0},
		{"d3", xtime.TIME_FMT_DATE, false, false, 3},
		{"c", xtime.TIME_FMT_CALDATE, false, false, 0},
		{"c1", xtime.TIME_FMT_CALDATE, false, false, 1},
		{"f", xtime.TIME_FMT_FITS, false, false, 0},
		{"F6", xtime.TIME_FMT_FITS, false, false, 6},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tf, hexfmt, nmday, dec, err := ReadForm(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tf)
			assert.Equal(t, tt.hexfmt, hexfmt)
			assert.Equal(t, tt.nmday, nmday)
			assert.Equal(t, tt.dec, dec)
		})
	}

	_, _, _, _, err := ReadForm("z")
	assert.Error(t, err)
}

func TestParseInputFITS(t *testing.T) {
	in, err := parseInput([]string{"1998-01-01T00:00:30", "t", "f", "t", "s"})
	require.NoError(t, err)

	assert.True(t, in.ch)
	assert.Equal(t, "1998-01-01T00:00:30", in.str)
	assert.Equal(t, xtime.TIME_FMT_FITS, in.tForm)
	assert.Equal(t, xtime.TIME_SYS_TT, in.tSys)
	assert.Equal(t, 3, in.nextat)
}

func TestParseInputCaldate(t *testing.T) {
	in, err := parseInput([]string{"2015Jun30", "at", "23:59:59", "u", "c", "u", "d"})
	require.NoError(t, err)

	assert.True(t, in.ch)
	assert.Equal(t, "2015Jun30 at 23:59:59", in.str)
	assert.Equal(t, xtime.TIME_FMT_CALDATE, in.tForm)
	assert.Equal(t, xtime.TIME_SYS_UTC, in.tSys)
	assert.Equal(t, 5, in.nextat)
}

func TestParseInputNumeric(t *testing.T) {
	in, err := parseInput([]string{"20483020.0", "m", "s", "u", "d3"})
	require.NoError(t, err)

	assert.False(t, in.ch)
	assert.InDelta(t, 20483020.0, in.val, 1e-9)
	assert.Equal(t, xtime.TIME_FMT_SECS, in.tForm)
}

func TestParseInputHex(t *testing.T) {
	in, err := parseInput([]string{"0x64", "m", "h", "m", "s"})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, in.val, 1e-9)
}

func TestParseInputMissionDay(t *testing.T) {
	in, err := parseInput([]string{"500:1:1:30", "m", "n", "m", "s"})
	require.NoError(t, err)
	assert.InDelta(t, 500*86400+3600+60+30, in.val, 1e-9)
}

func TestParseInputReferenceMJD(t *testing.T) {
	in, err := parseInput([]string{"100.0", "t", "s", "51544", "0.5", "t", "m"})
	require.NoError(t, err)

	assert.Equal(t, int64(51544), in.mjdi)
	assert.InDelta(t, 0.5, in.mjdf, 1e-12)
	assert.Equal(t, 5, in.nextat)
}

func TestParseInputErrors(t *testing.T) {
	_, err := parseInput([]string{"100.0", "t"})
	assert.Error(t, err)

	_, err = parseInput([]string{"abc", "t", "s", "t", "s"})
	assert.Error(t, err)

	_, err = parseInput([]string{"100.0", "z", "s", "t", "s"})
	assert.Error(t, err)
}
