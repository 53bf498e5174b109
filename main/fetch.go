package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sot/chandra-time/leapsec"
)

/***** VARIABLE ********************************/

var (
	fetchURL string
	fetchDir string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch-leaps",
	Short: "download a fresh leap second table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		url := fetchURL
		if url == "" {
			url = cfg.SourceURL
		}

		dir := fetchDir
		if dir == "" {
			dir = cfg.TimingDir
		}
		if dir == "" {
			dir = "."
		}

		if err := leapsec.Fetch(url, dir, logger); err != nil {
			return err
		}

		// pick up the new table right away, from the directory it
		// actually landed in
		leaps = leapsec.New(leapsec.WithLogger(logger), leapsec.WithRefresh(cfg.Refresh), leapsec.WithDir(dir))
		if leaps.LastRefreshed().IsZero() {
			return fmt.Errorf("downloaded table in %s could not be read", dir)
		}

		return nil
	},
}

/***** FUNCTION ********************************/

func init() {
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "the url of the leap second file")
	fetchCmd.Flags().StringVar(&fetchDir, "dir", "", "the directory to store the leap second file")
}

/***********************************************/
