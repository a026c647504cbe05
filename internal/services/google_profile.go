package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// GoogleProfile is the subset of the Google userinfo payload the
// resolver needs.
type GoogleProfile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// GoogleClient fetches the profile behind a Google OAuth access token.
type GoogleClient struct {
	profileURL string
	httpClient *http.Client
}

func NewGoogleClient(profileURL string) *GoogleClient {
	return &GoogleClient{
		profileURL: profileURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *GoogleClient) FetchProfile(ctx context.Context, accessToken string) (*GoogleProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google profile endpoint returned status %d", resp.StatusCode)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode Google profile: %w", err)
	}
	if profile.ID == "" || profile.Email == "" {
		return nil, errors.New("Google profile is missing id or email")
	}
	return &profile, nil
}
