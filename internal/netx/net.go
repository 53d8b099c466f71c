// Package netx holds small HTTP helpers shared by services.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DownloadBytes fetches the given URL and returns the response body.
// Non-200 responses are reported as errors.
func DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
