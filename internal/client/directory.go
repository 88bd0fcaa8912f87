package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/namegame/api/internal/model"
)

// DirectoryClient fetches employee profiles from the profile directory API.
type DirectoryClient struct {
	url        string
	httpClient *http.Client
}

func NewDirectoryClient(url string) *DirectoryClient {
	return &DirectoryClient{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetProfiles fetches the full profile list from the directory.
func (c *DirectoryClient) GetProfiles(ctx context.Context) ([]model.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("profile directory returned status %d: %s", resp.StatusCode, string(body))
	}

	var profiles []model.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}
