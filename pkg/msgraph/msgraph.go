package msgraph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	pkgHTTP "climate-srv/pkg/http"
	"climate-srv/pkg/log"
)

const (
	loginBaseURL = "https://login.microsoftonline.com"
	graphBaseURL = "https://graph.microsoft.com/v1.0"
	graphScope   = "https://graph.microsoft.com/.default"

	// maxPages caps pagination so a runaway nextLink chain cannot loop forever.
	maxPages = 100

	pageSizeUsers    = 999
	pageSizeMessages = 50

	tokenExpiryMargin = 60 * time.Second
)

var (
	// ErrCredentialsRequired is returned when tenant, client ID or secret is missing.
	ErrCredentialsRequired = errors.New("msgraph: tenant ID, client ID and client secret are required")
	// ErrTooManyPages is returned when pagination exceeds the page cap.
	ErrTooManyPages = errors.New("msgraph: pagination exceeded page limit")
)

type graphImpl struct {
	l      log.Logger
	client pkgHTTP.IClient
	cfg    Config

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// New creates a Microsoft Graph client using client credential auth.
func New(l log.Logger, client pkgHTTP.IClient, cfg Config) (IGraph, error) {
	if cfg.TenantID == "" || cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrCredentialsRequired
	}
	return &graphImpl{l: l, client: client, cfg: cfg}, nil
}

// token returns a cached access token, refreshing it when close to expiry.
func (g *graphImpl) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.accessToken != "" && time.Now().Before(g.tokenExpiry.Add(-tokenExpiryMargin)) {
		return g.accessToken, nil
	}

	tokenURL := fmt.Sprintf("%s/%s/oauth2/v2.0/token", loginBaseURL, g.cfg.TenantID)
	form := map[string]string{
		"grant_type":    "client_credentials",
		"client_id":     g.cfg.ClientID,
		"client_secret": g.cfg.ClientSecret,
		"scope":         graphScope,
	}

	body, status, err := g.client.PostForm(ctx, tokenURL, form, nil)
	if err != nil {
		return "", fmt.Errorf("msgraph.token: %w", err)
	}
	if status != 200 {
		return "", fmt.Errorf("msgraph.token: unexpected status %d: %s", status, string(body))
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("msgraph.token: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("msgraph.token: empty access token in response")
	}

	g.accessToken = tok.AccessToken
	g.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	g.l.Debugf(ctx, "msgraph: refreshed access token, expires at %s", g.tokenExpiry.Format(time.RFC3339))
	return g.accessToken, nil
}

// get performs an authenticated GET and decodes the response into out.
func (g *graphImpl) get(ctx context.Context, rawURL string, out interface{}) error {
	token, err := g.token(ctx)
	if err != nil {
		return err
	}

	headers := map[string]string{"Authorization": "Bearer " + token}
	body, status, err := g.client.Get(ctx, rawURL, headers)
	if err != nil {
		return err
	}
	if status != 200 {
		return fmt.Errorf("msgraph: unexpected status %d: %s", status, string(body))
	}
	return json.Unmarshal(body, out)
}

func (g *graphImpl) TestConnection(ctx context.Context) error {
	var resp userListResponse
	rawURL := fmt.Sprintf("%s/users?$select=id&$top=1", graphBaseURL)
	if err := g.get(ctx, rawURL, &resp); err != nil {
		return fmt.Errorf("msgraph.TestConnection: %w", err)
	}
	return nil
}

func (g *graphImpl) ListUsers(ctx context.Context) ([]User, error) {
	rawURL := fmt.Sprintf("%s/users?$select=id,displayName,mail,department,country&$top=%d",
		graphBaseURL, pageSizeUsers)

	var users []User
	for page := 0; rawURL != ""; page++ {
		if page >= maxPages {
			return nil, fmt.Errorf("msgraph.ListUsers: %w", ErrTooManyPages)
		}
		var resp userListResponse
		if err := g.get(ctx, rawURL, &resp); err != nil {
			return nil, fmt.Errorf("msgraph.ListUsers: %w", err)
		}
		users = append(users, resp.Value...)
		rawURL = resp.NextLink
	}
	return users, nil
}

func (g *graphImpl) ListUserMessages(ctx context.Context, userID string, from, to time.Time) ([]MailMessage, error) {
	filter := fmt.Sprintf("sentDateTime ge %s and sentDateTime le %s",
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	rawURL := fmt.Sprintf("%s/users/%s/messages?$filter=%s&$select=id,subject,bodyPreview,sentDateTime,from&$top=%d",
		graphBaseURL, url.PathEscape(userID), url.QueryEscape(filter), pageSizeMessages)

	var messages []MailMessage
	for page := 0; rawURL != ""; page++ {
		if page >= maxPages {
			return nil, fmt.Errorf("msgraph.ListUserMessages: %w", ErrTooManyPages)
		}
		var resp messageListResponse
		if err := g.get(ctx, rawURL, &resp); err != nil {
			return nil, fmt.Errorf("msgraph.ListUserMessages: %w", err)
		}
		messages = append(messages, resp.Value...)
		rawURL = resp.NextLink
	}
	return messages, nil
}

func (g *graphImpl) ListChats(ctx context.Context) ([]Chat, error) {
	rawURL := fmt.Sprintf("%s/chats", graphBaseURL)

	var chats []Chat
	for page := 0; rawURL != ""; page++ {
		if page >= maxPages {
			return nil, fmt.Errorf("msgraph.ListChats: %w", ErrTooManyPages)
		}
		var resp chatListResponse
		if err := g.get(ctx, rawURL, &resp); err != nil {
			return nil, fmt.Errorf("msgraph.ListChats: %w", err)
		}
		chats = append(chats, resp.Value...)
		rawURL = resp.NextLink
	}
	return chats, nil
}

func (g *graphImpl) ListChatMessages(ctx context.Context, chatID string, from, to time.Time) ([]ChatMessage, error) {
	filter := fmt.Sprintf("createdDateTime ge %s and createdDateTime le %s",
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	rawURL := fmt.Sprintf("%s/chats/%s/messages?$filter=%s&$top=%d",
		graphBaseURL, url.PathEscape(chatID), url.QueryEscape(filter), pageSizeMessages)

	var messages []ChatMessage
	for page := 0; rawURL != ""; page++ {
		if page >= maxPages {
			return nil, fmt.Errorf("msgraph.ListChatMessages: %w", ErrTooManyPages)
		}
		var resp chatMessageListResponse
		if err := g.get(ctx, rawURL, &resp); err != nil {
			return nil, fmt.Errorf("msgraph.ListChatMessages: %w", err)
		}
		messages = append(messages, resp.Value...)
		rawURL = resp.NextLink
	}
	return messages, nil
}
