package store

import (
	"context"

	"github.com/kundank11/GemFlow/internal/models"
)

// Store is the persistence port for chats and messages. Implementations
// stamp CreatedAt (and message IDs) on insert; chat ids are generated by the
// caller. Reads return empty slices, not errors, when nothing matches.
type Store interface {
	CreateChat(ctx context.Context, chat *models.Conversation) error
	SaveMessage(ctx context.Context, msg *models.Message) error

	// Messages returns a chat's transcript ordered by created_at ascending.
	Messages(ctx context.Context, chatID string) ([]models.Message, error)
	// Chats returns the chats owned by userID ordered by created_at descending.
	Chats(ctx context.Context, userID string) ([]models.Conversation, error)

	RenameChat(ctx context.Context, chatID, title string) error
	DeleteChat(ctx context.Context, chatID string) error

	Ping(ctx context.Context) error
	Close() error
}
