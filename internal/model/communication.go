package model

import "time"

// CommunicationSource identifies where a communication was collected from.
type CommunicationSource string

const (
	SourceMail CommunicationSource = "mail"
	SourceChat CommunicationSource = "chat"
)

// ChatType classifies a chat communication.
type ChatType string

const (
	ChatTypeDirect  ChatType = "direct"
	ChatTypeChannel ChatType = "channel"
	ChatTypeMeeting ChatType = "meeting"
)

// Communication is a single message unified into one shape regardless
// of whether it came from mail or chat. Produced transiently by the
// fetch stage; only a seen marker keyed by ID is persisted.
type Communication struct {
	ID         string              `json:"id"`
	Source     CommunicationSource `json:"source"`
	ChatType   ChatType            `json:"chatType,omitempty"`
	Subject    string              `json:"subject,omitempty"`
	Sender     string              `json:"sender"`
	Recipients []string            `json:"recipients"`
	Content    string              `json:"content"`
	SentAt     time.Time           `json:"sentAt"`
}
