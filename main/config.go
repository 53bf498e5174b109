package main

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/sot/chandra-time/leapsec"
)

/***** CONSTANT ********************************/

const (
	MIN_REFRESH_SEC = 60
	MAX_REFRESH_SEC = 365 * 86400
)

/***** STRUCT **********************************/

type tConfig struct {
	TimingDir  string `json:"timing dir"`
	RefreshSec int64  `json:"refresh seconds"`
	SourceURL  string `json:"leap source url"`
}

/***********************************************/

type Config struct {
	TimingDir string
	Refresh   time.Duration
	SourceURL string
}

/***** FUNCTION ********************************/

// Load reads the json config file. An empty path selects the
// defaults: no pinned timing dir, the standard refresh threshold,
// and the canonical leap second source.
func (cfg *Config) Load(cfgFile string) error {
	cfg.TimingDir = ""
	cfg.Refresh = leapsec.DEFAULT_REFRESH
	cfg.SourceURL = leapsec.DEFAULT_SOURCE_URL

	if cfgFile == "" {
		return nil
	}

	fp, err := os.Open(cfgFile)

	if err != nil {
		return err
	}

	defer fp.Close()

	dcr := json.NewDecoder(fp)
	var tCfg tConfig

	for dcr.More() {
		err = dcr.Decode(&tCfg)

		if err != nil {
			return err
		}
	}

	if tCfg.TimingDir != "" {
		info, err := os.Stat(tCfg.TimingDir)

		if err != nil {
			return err
		} else if !info.IsDir() {
			return errors.New(`"timing dir" is not a directory`)
		}

		cfg.TimingDir = tCfg.TimingDir
	}

	// check the refresh threshold
	if tCfg.RefreshSec != 0 {
		if tCfg.RefreshSec < MIN_REFRESH_SEC || tCfg.RefreshSec > MAX_REFRESH_SEC {
			return errors.New(`"refresh seconds" out of range`)
		}

		cfg.Refresh = time.Duration(tCfg.RefreshSec) * time.Second
	}

	if tCfg.SourceURL != "" {
		cfg.SourceURL = tCfg.SourceURL
	}

	return nil
}

/***********************************************/
