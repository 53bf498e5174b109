package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sot/chandra-time/xtime"
)

/***** FUNCTION ********************************/

func runConvert(cmd *cobra.Command, args []string) error {
	in, err := parseInput(args)
	if err != nil {
		return err
	}

	if len(args) < in.nextat+2 {
		return fmt.Errorf("missing output system and format")
	}

	outSys, err := ReadSys(args[in.nextat])
	if err != nil {
		return err
	}

	outForm, hexfmt, nmday, dec, err := ReadForm(args[in.nextat+1])
	if err != nil {
		return err
	}

	var T *xtime.Time
	if in.ch {
		T, err = xtime.NewDate(leaps, in.str, in.tSys, in.tForm, in.mjdi, in.mjdf)
	} else {
		T, err = xtime.NewValue(leaps, in.val, in.tSys, in.tForm, in.mjdi, in.mjdf)
	}
	if err != nil {
		return err
	}

	switch outForm {
	case xtime.TIME_FMT_SECS, xtime.TIME_FMT_JD, xtime.TIME_FMT_MJD:
		t, err := T.Get(outSys, outForm)
		if err != nil {
			return err
		}

		switch {
		case hexfmt:
			fmt.Fprintf(cmd.OutOrStdout(), "0x%7x\n", uint64(t))

		case nmday:
			day := int64(t) / 86400
			t -= float64(day * 86400)
			h := int64(t) / 3600
			t -= float64(h * 3600)
			m := int64(t) / 60
			t -= float64(m * 60)
			fmt.Fprintf(cmd.OutOrStdout(), "%d:%d:%d:%.10f\n", day, h, m, t)

		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%.9f\n", t)
		}

	default:
		s, err := T.GetDate(outSys, outForm, dec)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), s)
	}

	return nil
}

/***********************************************/
