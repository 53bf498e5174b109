package xtime

import "github.com/sot/chandra-time/leapsec"

/***** CONSTANT ********************************/

const (
	DAY2SEC  float64 = 86400.0
	SEC2DAY  float64 = 1.0 / DAY2SEC
	JD_MJD0  float64 = 2400000.5 // JD - MJD
	MJD_1972 int64   = 41317     // MJD at 1972.0
	TAI2TT   float64 = leapsec.TAI2TT

	MJD_REF_INT int64   = 50814 // default reference epoch, 1998.0 TT
	MJD_REF_FR  float64 = 0.0
	REF_LEAPS   float64 = 31.0 // leap seconds at the default reference epoch
)

/***********************************************/

type TimeSys uint8

const (
	TIME_SYS_MET TimeSys = iota // mission-elapsed time
	TIME_SYS_TT                 // terrestrial time
	TIME_SYS_TAI                // international atomic time
	TIME_SYS_UTC                // coordinated universal time
)

var TimeSys2Name map[TimeSys]string = map[TimeSys]string{
	TIME_SYS_MET: "MET",
	TIME_SYS_TT:  "TT",
	TIME_SYS_TAI: "TAI",
	TIME_SYS_UTC: "UTC",
}

var Name2TimeSys map[string]TimeSys = map[string]TimeSys{
	"MET": TIME_SYS_MET,
	"TT":  TIME_SYS_TT,
	"TAI": TIME_SYS_TAI,
	"UTC": TIME_SYS_UTC,
}

/***********************************************/

type TimeFormat uint8

const (
	TIME_FMT_SECS    TimeFormat = iota // seconds since the reference epoch
	TIME_FMT_JD                        // Julian Day
	TIME_FMT_MJD                       // Modified Julian Day
	TIME_FMT_DATE                      // yyyy:ddd:hh:mm:ss.sss
	TIME_FMT_CALDATE                   // yyyyMondd at hh:mm:ss.sss
	TIME_FMT_FITS                      // yyyy-mm-ddThh:mm:ss.sss
)

var TimeFormat2Name map[TimeFormat]string = map[TimeFormat]string{
	TIME_FMT_SECS:    "SECS",
	TIME_FMT_JD:      "JD",
	TIME_FMT_MJD:     "MJD",
	TIME_FMT_DATE:    "DATE",
	TIME_FMT_CALDATE: "CALDATE",
	TIME_FMT_FITS:    "FITS",
}

var Name2TimeFormat map[string]TimeFormat = map[string]TimeFormat{
	"SECS":    TIME_FMT_SECS,
	"JD":      TIME_FMT_JD,
	"MJD":     TIME_FMT_MJD,
	"DATE":    TIME_FMT_DATE,
	"CALDATE": TIME_FMT_CALDATE,
	"FITS":    TIME_FMT_FITS,
}

/***********************************************/

var (
	// Days per month; February is fixed up per year with the mission
	// calendar's divisible-by-four rule, not the Gregorian one.
	_DAYS_IN_MONTH [12]int64 = [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	_MONTH_NAMES [12]string = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)
