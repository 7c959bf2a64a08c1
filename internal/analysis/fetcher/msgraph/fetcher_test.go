package msgraph

import (
	"context"
	"errors"
	"testing"
	"time"

	"climate-srv/internal/analysis"
	"climate-srv/internal/model"
	"climate-srv/pkg/log"
	pkgMsgraph "climate-srv/pkg/msgraph"
)

type fakeGraph struct {
	users        []pkgMsgraph.User
	messages     map[string][]pkgMsgraph.MailMessage
	chats        []pkgMsgraph.Chat
	chatMessages map[string][]pkgMsgraph.ChatMessage
	failMailbox  map[string]bool
}

func (f *fakeGraph) TestConnection(ctx context.Context) error { return nil }

func (f *fakeGraph) ListUsers(ctx context.Context) ([]pkgMsgraph.User, error) {
	return f.users, nil
}

func (f *fakeGraph) ListUserMessages(ctx context.Context, userID string, from, to time.Time) ([]pkgMsgraph.MailMessage, error) {
	if f.failMailbox[userID] {
		return nil, errors.New("mailbox unavailable")
	}
	return f.messages[userID], nil
}

func (f *fakeGraph) ListChats(ctx context.Context) ([]pkgMsgraph.Chat, error) {
	return f.chats, nil
}

func (f *fakeGraph) ListChatMessages(ctx context.Context, chatID string, from, to time.Time) ([]pkgMsgraph.ChatMessage, error) {
	return f.chatMessages[chatID], nil
}

func chatFrom(userID, name string) pkgMsgraph.ChatMessageFrom {
	var from pkgMsgraph.ChatMessageFrom
	from.User = &struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	}{ID: userID, DisplayName: name}
	return from
}

func testFetcher(g pkgMsgraph.IGraph) analysis.Fetcher {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"})
	return New(l, g)
}

func TestFetchCommunicationsUnifiesSources(t *testing.T) {
	g := &fakeGraph{
		users: []pkgMsgraph.User{
			{ID: "u1", Mail: "alice@acme.com", Department: "Ventas", Country: "Colombia"},
		},
		messages: map[string][]pkgMsgraph.MailMessage{
			"u1": {{
				ID: "m1", Subject: "Cierre Q3", BodyPreview: "resumen",
				SentDateTime: "2025-07-02T10:00:00Z",
				From:         pkgMsgraph.Recipient{EmailAddress: pkgMsgraph.EmailAddress{Address: "alice@acme.com"}},
			}},
		},
		chats: []pkgMsgraph.Chat{{ID: "c1", Topic: "Equipo Ventas", ChatType: "group"}},
		chatMessages: map[string][]pkgMsgraph.ChatMessage{
			"c1": {{
				ID:              "cm1",
				Body:            pkgMsgraph.ItemBody{ContentType: "text", Content: "buen trabajo"},
				CreatedDateTime: "2025-07-03T09:00:00Z",
				From:            chatFrom("u1", "Alice"),
			}},
		},
	}

	comms, err := testFetcher(g).FetchCommunications(context.Background(), analysis.Filters{})
	if err != nil {
		t.Fatalf("FetchCommunications() error = %v", err)
	}
	if len(comms) != 2 {
		t.Fatalf("FetchCommunications() returned %d records, want 2", len(comms))
	}

	mail, chat := comms[0], comms[1]
	if mail.Source != model.SourceMail || mail.ID != "m1" {
		t.Errorf("first record = %+v, want mail m1", mail)
	}
	if chat.Source != model.SourceChat || chat.ChatType != model.ChatTypeChannel {
		t.Errorf("chat record = %+v, want chat/channel", chat)
	}
	if chat.Sender != "Alice" {
		t.Errorf("chat sender = %q, want Alice", chat.Sender)
	}
}

func TestFetchCommunicationsDepartmentFilter(t *testing.T) {
	g := &fakeGraph{
		users: []pkgMsgraph.User{
			{ID: "u1", Department: "Ventas", Country: "Colombia"},
			{ID: "u2", Department: "IT", Country: "Colombia"},
		},
		messages: map[string][]pkgMsgraph.MailMessage{
			"u1": {{ID: "m1", SentDateTime: "2025-07-02T10:00:00Z"}},
			"u2": {{ID: "m2", SentDateTime: "2025-07-02T11:00:00Z"}},
		},
	}

	comms, err := testFetcher(g).FetchCommunications(context.Background(), analysis.Filters{
		Departments: []string{"ventas"},
	})
	if err != nil {
		t.Fatalf("FetchCommunications() error = %v", err)
	}
	if len(comms) != 1 || comms[0].ID != "m1" {
		t.Errorf("filter did not restrict to Ventas: %+v", comms)
	}
}

func TestFetchCommunicationsAccentInsensitiveCountry(t *testing.T) {
	g := &fakeGraph{
		users: []pkgMsgraph.User{
			{ID: "u1", Department: "IT", Country: "Panamá"},
		},
		messages: map[string][]pkgMsgraph.MailMessage{
			"u1": {{ID: "m1", SentDateTime: "2025-07-02T10:00:00Z"}},
		},
	}

	comms, err := testFetcher(g).FetchCommunications(context.Background(), analysis.Filters{
		Countries: []string{"Panama"},
	})
	if err != nil {
		t.Fatalf("FetchCommunications() error = %v", err)
	}
	if len(comms) != 1 {
		t.Errorf("accented country did not match its plain form: %+v", comms)
	}
}

func TestFetchCommunicationsSkipsBrokenMailbox(t *testing.T) {
	g := &fakeGraph{
		users: []pkgMsgraph.User{
			{ID: "u1", Department: "IT", Country: "Colombia"},
			{ID: "u2", Department: "IT", Country: "Colombia"},
		},
		messages: map[string][]pkgMsgraph.MailMessage{
			"u2": {{ID: "m2", SentDateTime: "2025-07-02T10:00:00Z"}},
		},
		failMailbox: map[string]bool{"u1": true},
	}

	comms, err := testFetcher(g).FetchCommunications(context.Background(), analysis.Filters{})
	if err != nil {
		t.Fatalf("FetchCommunications() error = %v", err)
	}
	if len(comms) != 1 || comms[0].ID != "m2" {
		t.Errorf("broken mailbox was not skipped cleanly: %+v", comms)
	}
}

func TestFetchCommunicationsChatSenderRestriction(t *testing.T) {
	g := &fakeGraph{
		users: []pkgMsgraph.User{
			{ID: "u1", Department: "Ventas", Country: "Colombia"},
			{ID: "u2", Department: "IT", Country: "Colombia"},
		},
		chats: []pkgMsgraph.Chat{{ID: "c1", ChatType: "oneOnOne"}},
		chatMessages: map[string][]pkgMsgraph.ChatMessage{
			"c1": {
				{ID: "cm1", CreatedDateTime: "2025-07-03T09:00:00Z", From: chatFrom("u1", "Alice")},
				{ID: "cm2", CreatedDateTime: "2025-07-03T09:05:00Z", From: chatFrom("u2", "Bob")},
			},
		},
	}

	comms, err := testFetcher(g).FetchCommunications(context.Background(), analysis.Filters{
		Departments: []string{"Ventas"},
	})
	if err != nil {
		t.Fatalf("FetchCommunications() error = %v", err)
	}
	if len(comms) != 1 || comms[0].ID != "cm1" {
		t.Errorf("chat messages not restricted to filtered senders: %+v", comms)
	}
	if comms[0].ChatType != model.ChatTypeDirect {
		t.Errorf("chatType = %s, want direct", comms[0].ChatType)
	}
}
