package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// titleMaxLen is the number of characters of the first user message kept as
// the chat title.
const titleMaxLen = 50

type Conversation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID        int64     `json:"id"`
	ChatID    string    `json:"chat_id"`
	Role      string    `json:"role"` // user or assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TitleFromMessage derives a chat title from the message that opened the
// chat. Truncation counts characters, not bytes.
func TitleFromMessage(s string) string {
	runes := []rune(s)
	if len(runes) <= titleMaxLen {
		return s
	}
	return string(runes[:titleMaxLen])
}
