package leapsec

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

/***** CONSTANT ********************************/

const (
	// DEFAULT_SOURCE_URL serves the canonical tai-utc.dat.
	DEFAULT_SOURCE_URL = "https://maia.usno.navy.mil/ser7/tai-utc.dat"

	fetchUserAgent = "chandra-time/1.0"
)

/***** FUNCTION ********************************/

/*
Fetch downloads tai-utc.dat from url into dir, so that a later Refresh
has a local source to read. The file is validated before it replaces
any existing copy; a failed download leaves the directory untouched.
*/
func Fetch(url, dir string, logger zerolog.Logger) error {
	client := http.Client{}
	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(time.Minute, func() { cancel() })
	defer timer.Stop()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return err
	}

	request.Header.Add("User-Agent", fetchUserAgent)

	response, err := client.Do(request)

	if err != nil {
		return err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("invalid response status code %d", response.StatusCode)
	}

	tmp, err := os.CreateTemp(dir, LEAP_FILE_NAME+".*")

	if err != nil {
		return err
	}

	defer os.Remove(tmp.Name())

	for {
		timer.Reset(30 * time.Second)
		_, err = io.CopyN(tmp, response.Body, 1024)

		if err == io.EOF {
			break
		} else if err != nil {
			tmp.Close()
			return err
		}
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	// Refuse to install a file the table cannot parse.
	if _, err = readLeapFile(tmp.Name()); err != nil {
		return err
	}

	path := filepath.Join(dir, LEAP_FILE_NAME)

	if err = os.Rename(tmp.Name(), path); err != nil {
		return err
	}

	logger.Info().Str("url", url).Str("path", path).Msg("leap second file fetched")
	return nil
}
