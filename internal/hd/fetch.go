//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package hd

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

//
// REMOTE CSV FETCH
//

// one-shot blocking reads per run: no cache, no offline fallback; transient failures
// get a bounded retry with backoff and then the run dies

const (
	RETRYWAIT    = 500 * time.Millisecond
	RETRYMAXWAIT = 5 * time.Second
	FETCHTIMEOUT = 90 * time.Second
)

// DataFetchError - remote source unreachable or unusable; fatal for the run, no partial results
type DataFetchError struct {
	URL string
	Err error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("fetch of '%s' failed: %v", e.URL, e.Err)
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}

// Fetch - grab one remote CSV; tries = total attempts, not retries
func Fetch(url string, tries int) ([]byte, error) {
	if tries < 1 {
		tries = 1
	}

	client := resty.New().
		SetRetryCount(tries - 1).
		SetRetryWaitTime(RETRYWAIT).
		SetRetryMaxWaitTime(RETRYMAXWAIT).
		SetTimeout(FETCHTIMEOUT).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	resp, err := client.R().Get(url)
	if err != nil {
		return nil, &DataFetchError{URL: url, Err: err}
	}
	if resp.IsError() {
		return nil, &DataFetchError{URL: url, Err: fmt.Errorf("status %s", resp.Status())}
	}

	return resp.Body(), nil
}
