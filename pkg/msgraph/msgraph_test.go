package msgraph

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"climate-srv/pkg/log"
)

type fakeHTTPClient struct {
	tokenCalls int
	getCalls   []string
	responses  map[string]string
	status     int
}

func (f *fakeHTTPClient) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	f.getCalls = append(f.getCalls, url)
	if headers["Authorization"] != "Bearer test-token" {
		return []byte(`{"error":"unauthorized"}`), 401, nil
	}
	for prefix, body := range f.responses {
		if strings.HasPrefix(url, prefix) {
			status := f.status
			if status == 0 {
				status = 200
			}
			return []byte(body), status, nil
		}
	}
	return []byte(`{"value":[]}`), 200, nil
}

func (f *fakeHTTPClient) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	return nil, 404, nil
}

func (f *fakeHTTPClient) PostForm(ctx context.Context, url string, form map[string]string, headers map[string]string) ([]byte, int, error) {
	f.tokenCalls++
	if form["grant_type"] != "client_credentials" {
		return []byte(`{"error":"unsupported_grant_type"}`), 400, nil
	}
	return []byte(`{"access_token":"test-token","expires_in":3600,"token_type":"Bearer"}`), 200, nil
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"})
}

func testConfig() Config {
	return Config{TenantID: "tenant", ClientID: "client", ClientSecret: "secret"}
}

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := New(testLogger(), &fakeHTTPClient{}, Config{TenantID: "t"}); err != ErrCredentialsRequired {
		t.Errorf("New() error = %v, want %v", err, ErrCredentialsRequired)
	}
}

func TestListUsersFollowsPagination(t *testing.T) {
	page2 := "https://graph.microsoft.com/v1.0/users?$skiptoken=page2"
	f := &fakeHTTPClient{
		responses: map[string]string{
			page2: `{"value":[{"id":"u3","displayName":"Carol","mail":"carol@acme.com","department":"IT","country":"Colombia"}]}`,
			"https://graph.microsoft.com/v1.0/users?$select": `{
				"value":[
					{"id":"u1","displayName":"Alice","mail":"alice@acme.com","department":"Ventas","country":"Colombia"},
					{"id":"u2","displayName":"Bob","mail":"bob@acme.com","department":"IT","country":"Panama"}
				],
				"@odata.nextLink":"` + page2 + `"
			}`,
		},
	}

	g, err := New(testLogger(), f, testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	users, err := g.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("ListUsers() returned %d users, want 3", len(users))
	}
	if users[2].ID != "u3" {
		t.Errorf("last user ID = %q, want u3", users[2].ID)
	}
	if f.tokenCalls != 1 {
		t.Errorf("token endpoint called %d times, want 1 (cached)", f.tokenCalls)
	}
}

func TestListUserMessagesDateFilter(t *testing.T) {
	f := &fakeHTTPClient{
		responses: map[string]string{
			"https://graph.microsoft.com/v1.0/users/u1/messages": `{
				"value":[{"id":"m1","subject":"Q3 review","bodyPreview":"hola equipo","sentDateTime":"2025-07-02T10:00:00Z","from":{"emailAddress":{"name":"Alice","address":"alice@acme.com"}}}]
			}`,
		},
	}

	g, err := New(testLogger(), f, testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	messages, err := g.ListUserMessages(context.Background(), "u1", from, to)
	if err != nil {
		t.Fatalf("ListUserMessages() error = %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("ListUserMessages() returned %d messages, want 1", len(messages))
	}
	if messages[0].From.EmailAddress.Address != "alice@acme.com" {
		t.Errorf("sender = %q, want alice@acme.com", messages[0].From.EmailAddress.Address)
	}

	// the request is made after the token call, so getCalls[0] is the messages URL
	if len(f.getCalls) == 0 {
		t.Fatal("no GET calls recorded")
	}
	if !strings.Contains(f.getCalls[0], "sentDateTime+ge+2025-07-01T00%3A00%3A00Z") {
		t.Errorf("messages URL missing encoded date filter: %s", f.getCalls[0])
	}
}

func TestPaginationCap(t *testing.T) {
	// every page points to itself, so the cap must trip
	loop := `{"value":[{"id":"u1"}],"@odata.nextLink":"https://graph.microsoft.com/v1.0/users?$select=loop"}`
	f := &fakeHTTPClient{
		responses: map[string]string{
			"https://graph.microsoft.com/v1.0/users?$select": loop,
		},
	}

	g, err := New(testLogger(), f, testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := g.ListUsers(context.Background()); err == nil {
		t.Fatal("ListUsers() expected error for unbounded pagination")
	}
}

func TestTestConnection(t *testing.T) {
	f := &fakeHTTPClient{
		responses: map[string]string{
			"https://graph.microsoft.com/v1.0/users?$select=id&$top=1": `{"value":[{"id":"u1"}]}`,
		},
	}

	g, err := New(testLogger(), f, testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := g.TestConnection(context.Background()); err != nil {
		t.Errorf("TestConnection() error = %v", err)
	}
}

func TestGraphErrorStatus(t *testing.T) {
	f := &fakeHTTPClient{
		status: 403,
		responses: map[string]string{
			"https://graph.microsoft.com/v1.0/users": `{"error":{"code":"Authorization_RequestDenied"}}`,
		},
	}

	g, err := New(testLogger(), f, testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := g.ListUsers(context.Background()); err == nil {
		t.Fatal("ListUsers() expected error for 403 response")
	}
}

func TestChatMessageDecoding(t *testing.T) {
	raw := `{"id":"cm1","body":{"contentType":"text","content":"buen trabajo"},"createdDateTime":"2025-07-03T09:00:00Z","from":{"user":{"id":"u2","displayName":"Bob"}}}`
	var msg ChatMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.From.User == nil || msg.From.User.DisplayName != "Bob" {
		t.Errorf("sender not decoded: %+v", msg.From)
	}
}
