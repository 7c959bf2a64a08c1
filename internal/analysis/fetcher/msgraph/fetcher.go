package msgraph

import (
	"context"
	"fmt"
	"strings"
	"time"

	"climate-srv/internal/analysis"
	"climate-srv/internal/model"
	pkgMsgraph "climate-srv/pkg/msgraph"
)

const defaultRangeDays = 30

// FetchCommunications lists directory users, narrows them by the
// department and country filters, then collects each user's mail plus
// the chat messages sent by those users in the date range.
//
// A failure for one user or chat is logged and skipped so a single
// broken mailbox cannot sink the whole fetch. Only a failure to list
// users or chats is fatal.
func (f *implFetcher) FetchCommunications(ctx context.Context, filters analysis.Filters) ([]model.Communication, error) {
	from, to := resolveRange(filters)

	users, err := f.graph.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("FetchCommunications: %w", err)
	}

	selected := filterUsers(users, filters)
	allowedSenders := make(map[string]bool, len(selected))
	for _, u := range selected {
		allowedSenders[u.ID] = true
	}

	comms := []model.Communication{}

	for _, user := range selected {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		messages, err := f.graph.ListUserMessages(ctx, user.ID, from, to)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			f.l.Warnf(ctx, "fetcher: skipping mailbox of %s: %v", user.ID, err)
			continue
		}

		for _, msg := range messages {
			comms = append(comms, mailToCommunication(msg, user))
		}
	}

	chats, err := f.graph.ListChats(ctx)
	if err != nil {
		return nil, fmt.Errorf("FetchCommunications: %w", err)
	}

	restrictSenders := len(filters.Departments) > 0 || len(filters.Countries) > 0

	for _, chat := range chats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		messages, err := f.graph.ListChatMessages(ctx, chat.ID, from, to)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			f.l.Warnf(ctx, "fetcher: skipping chat %s: %v", chat.ID, err)
			continue
		}

		for _, msg := range messages {
			if msg.From.User == nil {
				continue
			}
			if restrictSenders && !allowedSenders[msg.From.User.ID] {
				continue
			}
			comms = append(comms, chatToCommunication(msg, chat))
		}
	}

	return comms, nil
}

func resolveRange(filters analysis.Filters) (time.Time, time.Time) {
	to := time.Now().UTC()
	if filters.DateTo != nil {
		to = *filters.DateTo
	}
	from := to.AddDate(0, 0, -defaultRangeDays)
	if filters.DateFrom != nil {
		from = *filters.DateFrom
	}
	return from, to
}

func filterUsers(users []pkgMsgraph.User, filters analysis.Filters) []pkgMsgraph.User {
	selected := make([]pkgMsgraph.User, 0, len(users))
	for _, u := range users {
		if len(filters.Departments) > 0 && !containsNormalized(filters.Departments, u.Department) {
			continue
		}
		if len(filters.Countries) > 0 && !containsNormalized(filters.Countries, u.Country) {
			continue
		}
		selected = append(selected, u)
	}
	return selected
}

// accentFolder maps accented Spanish vowels so "Panamá" matches "Panama".
var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U",
)

func normalizeName(name string) string {
	return strings.ToLower(accentFolder.Replace(strings.TrimSpace(name)))
}

func containsNormalized(haystack []string, needle string) bool {
	n := normalizeName(needle)
	for _, h := range haystack {
		if normalizeName(h) == n {
			return true
		}
	}
	return false
}

func mailToCommunication(msg pkgMsgraph.MailMessage, owner pkgMsgraph.User) model.Communication {
	sender := msg.From.EmailAddress.Address
	if sender == "" {
		sender = owner.Mail
	}

	sentAt, err := time.Parse(time.RFC3339, msg.SentDateTime)
	if err != nil {
		sentAt = time.Time{}
	}

	return model.Communication{
		ID:         msg.ID,
		Source:     model.SourceMail,
		Subject:    msg.Subject,
		Sender:     sender,
		Recipients: []string{},
		Content:    msg.BodyPreview,
		SentAt:     sentAt,
	}
}

func chatToCommunication(msg pkgMsgraph.ChatMessage, chat pkgMsgraph.Chat) model.Communication {
	sentAt, err := time.Parse(time.RFC3339, msg.CreatedDateTime)
	if err != nil {
		sentAt = time.Time{}
	}

	return model.Communication{
		ID:         msg.ID,
		Source:     model.SourceChat,
		ChatType:   mapChatType(chat.ChatType),
		Subject:    chat.Topic,
		Sender:     msg.From.User.DisplayName,
		Recipients: []string{},
		Content:    msg.Body.Content,
		SentAt:     sentAt,
	}
}

func mapChatType(graphType string) model.ChatType {
	switch graphType {
	case "oneOnOne":
		return model.ChatTypeDirect
	case "meeting":
		return model.ChatTypeMeeting
	default:
		return model.ChatTypeChannel
	}
}
