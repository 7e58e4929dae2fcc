package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"travely/internal/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// googleUserinfoURL is the provider endpoint returning the profile for an
// exchanged access token.
const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleVerifier abstracts the OAuth provider round trip so the auth flow can
// be tested without network access.
type GoogleVerifier interface {
	// AuthCodeURL builds the provider redirect URL carrying the state nonce.
	AuthCodeURL(state string) string
	// Exchange trades a callback code for the provider profile.
	Exchange(ctx context.Context, code string) (*models.GoogleProfile, error)
}

// googleVerifier implements GoogleVerifier against the real provider.
type googleVerifier struct {
	cfg *oauth2.Config
}

// NewGoogleVerifier builds a GoogleVerifier from client credentials.
func NewGoogleVerifier(clientID, clientSecret, callbackURL string) GoogleVerifier {
	return &googleVerifier{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleVerifier) AuthCodeURL(state string) string {
	return g.cfg.AuthCodeURL(state)
}

func (g *googleVerifier) Exchange(ctx context.Context, code string) (*models.GoogleProfile, error) {
	token, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	resp, err := g.cfg.Client(ctx, token).Get(googleUserinfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var profile models.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	return &profile, nil
}
