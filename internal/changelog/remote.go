package changelog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultRemoteTimeout is the default timeout for remote changelog fetches.
const DefaultRemoteTimeout = 10 * time.Second

// maxRemoteSize caps how much of a remote response is read. Changelogs are
// small text files; anything past this is not one.
const maxRemoteSize = 4 << 20

// FetchRemote fetches a raw markdown changelog from the given URL.
// The context controls timeout and cancellation. The returned content is
// not validated; callers run Validate on it just as for a local file.
func FetchRemote(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	return string(body), nil
}
