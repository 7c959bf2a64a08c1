package msgraph

import (
	"context"
	"time"
)

// IGraph is the interface for the Microsoft Graph API client.
type IGraph interface {
	// TestConnection acquires a token and fetches a single user to verify access.
	TestConnection(ctx context.Context) error
	// ListUsers returns all users in the organization.
	ListUsers(ctx context.Context) ([]User, error)
	// ListUserMessages returns the mail messages a user sent or received
	// within the date range, following pagination.
	ListUserMessages(ctx context.Context, userID string, from, to time.Time) ([]MailMessage, error)
	// ListChats returns the chats visible to the application.
	ListChats(ctx context.Context) ([]Chat, error)
	// ListChatMessages returns the messages of a chat within the date range.
	ListChatMessages(ctx context.Context, chatID string, from, to time.Time) ([]ChatMessage, error)
}
