package helpers

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// GravatarClient resolves an avatar image URL for an email address.
// Lookup is strictly best-effort: callers treat any error as "no avatar".
type GravatarClient struct {
	BaseURL string
	Client  *http.Client
}

func NewGravatarClient() *GravatarClient {
	return &GravatarClient{
		BaseURL: "https://www.gravatar.com",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// ImageURL probes Gravatar for the email's avatar. The d=404 probe makes
// Gravatar answer 404 instead of serving a generated default, so absence
// is reported as an error.
func (g *GravatarClient) ImageURL(ctx context.Context, email string) (string, error) {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	hash := hex.EncodeToString(sum[:])
	probe := fmt.Sprintf("%s/avatar/%s?d=404", g.BaseURL, hash)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, probe, nil)
	if err != nil {
		return "", err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gravatar: no image for %s (status %d)", email, resp.StatusCode)
	}
	return fmt.Sprintf("%s/avatar/%s?s=250", g.BaseURL, hash), nil
}
