/*
axtime is a command line utility that converts a time between the
MET, TT, TAI, and UTC time systems, in any of the supported formats.

	axtime <time> <sys_in> <fmt_in> [<mjdrefi> [<mjdreff>]] <sys_out> <fmt_out>

Time system codes are m[et], t[t], ta[i] or a, and u[tc]. Format
codes are s (seconds), h (hexadecimal seconds), n (mission day
number), j (JD), m (MJD), d[n] (DATE), c[n] (CALDATE), and f[n]
(FITS), where the optional digit n requests decimals in the seconds
field. Codes are case-insensitive.
*/
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sot/chandra-time/leapsec"
)

/***** VARIABLE ********************************/

var (
	cfg     Config
	cfgFile string
	logger  zerolog.Logger
	leaps   *leapsec.Table
)

var rootCmd = &cobra.Command{
	Use:           "axtime <time> <sys_in> <fmt_in> [<mjdrefi> [<mjdreff>]] <sys_out> <fmt_out>",
	Short:         "convert a time between the MET, TT, TAI, and UTC systems",
	Args:          cobra.MinimumNArgs(5),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Load(cfgFile); err != nil {
			return err
		}

		opts := []leapsec.Option{leapsec.WithLogger(logger), leapsec.WithRefresh(cfg.Refresh)}
		if cfg.TimingDir != "" {
			opts = append(opts, leapsec.WithDir(cfg.TimingDir))
		}
		leaps = leapsec.New(opts...)

		return nil
	},
	RunE: runConvert,
}

/***** FUNCTION ********************************/

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "cfg", "", "the path of the config file (json)")
	rootCmd.AddCommand(fetchCmd)
}

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("axtime failed")
	}
}

/***********************************************/
