package utils

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Get performs a single-attempt GET with a short finite timeout. Non-2xx
// responses are transport failures; the caller decodes the body.
func Get(url string) ([]byte, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("Get: failed to create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Get: request failed: %w", err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("Get: failed to read response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("Get: %s returned http code %v", url, res.Status)
	}

	return body, nil
}
