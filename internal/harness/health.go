package harness

import (
	"context"
	"fmt"
	"net/http"
	"time"

	applog "gamjatokki/internal/log"
)

const healthPollInterval = 250 * time.Millisecond

// WaitHealthy polls url until it answers 200 or timeout elapses.
func WaitHealthy(ctx context.Context, url string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := &http.Client{Timeout: 2 * time.Second}
	var lastErr error
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("health request: %w", err)
		}
		resp, err := client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
			err = fmt.Errorf("status %d", resp.StatusCode)
		}
		lastErr = err

		if werr := wait(ctx, healthPollInterval); werr != nil {
			return fmt.Errorf("server at %s not healthy after %v: %w", url, timeout, lastErr)
		}
	}
}

// WaitHealthy waits for the session's server to pass its health check,
// bounded by the configured launch timeout.
func (s *Session) WaitHealthy(ctx context.Context) error {
	url := s.Config.Server.URL() + "/healthz"
	if err := WaitHealthy(ctx, url, s.Config.Server.LaunchTimeout); err != nil {
		s.log().ErrorContext(ctx, "Server did not become healthy", "url", url, applog.FieldError, err)
		return err
	}
	return nil
}
