package util

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrStatus is returned for non-2xx responses.
var ErrStatus = errors.New("unexpected http status")

// MaxBody caps how much GetBytes reads from one response.
const MaxBody = 32 << 20

var client = http.Client{Timeout: 12 * time.Second}

// GetBytes fetches url and returns at most MaxBody bytes of the body.
func GetBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: %w: %d", url, ErrStatus, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, MaxBody))
}
