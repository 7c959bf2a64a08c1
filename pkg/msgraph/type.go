package msgraph

// Config holds the client credential settings for the Graph API.
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string
}

// User is a directory user.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
	Department  string `json:"department"`
	Country     string `json:"country"`
}

// EmailAddress is the address part of a mail recipient.
type EmailAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Recipient wraps an email address.
type Recipient struct {
	EmailAddress EmailAddress `json:"emailAddress"`
}

// ItemBody is the body of a mail or chat message.
type ItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// MailMessage is a mail item returned by the messages endpoint.
type MailMessage struct {
	ID           string    `json:"id"`
	Subject      string    `json:"subject"`
	BodyPreview  string    `json:"bodyPreview"`
	SentDateTime string    `json:"sentDateTime"`
	From         Recipient `json:"from"`
}

// Chat is a Teams chat.
type Chat struct {
	ID       string `json:"id"`
	Topic    string `json:"topic"`
	ChatType string `json:"chatType"`
}

// ChatMessageFrom identifies the sender of a chat message.
type ChatMessageFrom struct {
	User *struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"user"`
}

// ChatMessage is a message inside a Teams chat.
type ChatMessage struct {
	ID              string          `json:"id"`
	Body            ItemBody        `json:"body"`
	CreatedDateTime string          `json:"createdDateTime"`
	From            ChatMessageFrom `json:"from"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type userListResponse struct {
	Value    []User `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

type messageListResponse struct {
	Value    []MailMessage `json:"value"`
	NextLink string        `json:"@odata.nextLink"`
}

type chatListResponse struct {
	Value    []Chat `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

type chatMessageListResponse struct {
	Value    []ChatMessage `json:"value"`
	NextLink string        `json:"@odata.nextLink"`
}
