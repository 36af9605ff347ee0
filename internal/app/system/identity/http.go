package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// HTTPProvider talks to the identity provider's admin user-listing endpoint.
// Requests carry an OAuth2 bearer token; pagination follows nextPageToken.
type HTTPProvider struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

// NewHTTPProvider builds a provider client against endpoint, authenticating
// every request through ts.
func NewHTTPProvider(endpoint string, ts oauth2.TokenSource, logger *zap.Logger) *HTTPProvider {
	return &HTTPProvider{
		endpoint: endpoint,
		client:   oauth2.NewClient(context.Background(), ts),
		log:      logger,
	}
}

// wireUser matches the provider's listing payload.
type wireUser struct {
	UID              string `json:"uid"`
	LocalID          string `json:"localId"`
	DisplayName      string `json:"displayName"`
	Email            string `json:"email"`
	PhotoURL         string `json:"photoUrl"`
	CustomAttributes string `json:"customAttributes"` // JSON-encoded map
	CreatedAt        string `json:"createdAt"`        // unix millis
	LastLoginAt      string `json:"lastLoginAt"`      // unix millis
}

type listPage struct {
	Users         []wireUser `json:"users"`
	NextPageToken string     `json:"nextPageToken"`
}

// ListUsers walks every page of the user roster.
func (p *HTTPProvider) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	pageToken := ""
	for {
		page, err := p.fetchPage(ctx, pageToken)
		if err != nil {
			return nil, err
		}
		for _, wu := range page.Users {
			out = append(out, wu.toUser(p.log))
		}
		if page.NextPageToken == "" {
			return out, nil
		}
		pageToken = page.NextPageToken
	}
}

func (p *HTTPProvider) fetchPage(ctx context.Context, pageToken string) (*listPage, error) {
	u, err := url.Parse(p.endpoint)
	if err != nil {
		return nil, fmt.Errorf("identity: bad endpoint: %w", err)
	}
	q := u.Query()
	if pageToken != "" {
		q.Set("nextPageToken", pageToken)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity: user listing returned %s", resp.Status)
	}
	var page listPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("identity: decode user listing: %w", err)
	}
	return &page, nil
}

func (wu wireUser) toUser(log *zap.Logger) User {
	u := User{
		UID:          wu.UID,
		DisplayName:  wu.DisplayName,
		Email:        wu.Email,
		PhotoURL:     wu.PhotoURL,
		CreatedAt:    millisTime(wu.CreatedAt),
		LastSignInAt: millisTime(wu.LastLoginAt),
	}
	if u.UID == "" {
		u.UID = wu.LocalID
	}
	if wu.CustomAttributes != "" {
		if err := json.Unmarshal([]byte(wu.CustomAttributes), &u.CustomAttributes); err != nil && log != nil {
			log.Warn("identity: unparsable custom attributes", zap.String("uid", u.UID), zap.Error(err))
		}
	}
	return u
}

func millisTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	var ms int64
	if _, err := fmt.Sscanf(s, "%d", &ms); err != nil || ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
