package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kundank11/GemFlow/internal/llm"
	"github.com/kundank11/GemFlow/internal/models"
	"github.com/kundank11/GemFlow/internal/store"
)

var (
	ErrEmptyMessage = errors.New("message must not be empty")
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrMissingChat  = errors.New("chat id is required")
	ErrMissingUser  = errors.New("user id is required")
)

// Service orchestrates one chat turn: persist the user message, call the
// model, persist the reply. It holds no state of its own beyond the injected
// collaborators, so it is safe for concurrent use across turns.
type Service struct {
	store  store.Store
	llm    llm.Generator
	logger *zap.Logger
}

func New(st store.Store, gen llm.Generator, logger *zap.Logger) *Service {
	return &Service{store: st, llm: gen, logger: logger}
}

// SendTurn runs one request/reply cycle. An empty chatID starts a new chat
// whose title is derived from the message; a non-empty chatID appends to an
// existing one. A failed model call never fails the turn: the placeholder
// reply is persisted and returned instead. The user message is not rolled
// back if the assistant write fails.
func (s *Service) SendTurn(ctx context.Context, chatID, userID, text string) (string, string, error) {
	if strings.TrimSpace(text) == "" {
		return "", "", ErrEmptyMessage
	}

	if chatID == "" {
		chatID = uuid.NewString()
		chat := &models.Conversation{
			ID:     chatID,
			UserID: userID,
			Title:  models.TitleFromMessage(text),
		}
		if err := s.store.CreateChat(ctx, chat); err != nil {
			return "", "", fmt.Errorf("create chat: %w", err)
		}
		s.logger.Info("created chat",
			zap.String("chatID", chatID),
			zap.String("userID", userID))
	}

	userMsg := &models.Message{ChatID: chatID, Role: models.RoleUser, Content: text}
	if err := s.store.SaveMessage(ctx, userMsg); err != nil {
		return "", "", fmt.Errorf("save user message: %w", err)
	}

	res := s.llm.Generate(ctx, text)
	if !res.Ok() {
		s.logger.Warn("model call failed, using placeholder reply",
			zap.String("chatID", chatID),
			zap.String("model", s.llm.Model()),
			zap.Error(res.Err()))
	}
	reply := llm.Fallback(s.llm.Model(), res)

	assistantMsg := &models.Message{ChatID: chatID, Role: models.RoleAssistant, Content: reply}
	if err := s.store.SaveMessage(ctx, assistantMsg); err != nil {
		return "", "", fmt.Errorf("save assistant message: %w", err)
	}

	return chatID, reply, nil
}

// Transcript returns a chat's messages oldest first. An unknown chat yields
// an empty transcript, not an error.
func (s *Service) Transcript(ctx context.Context, chatID string) ([]models.Message, error) {
	if chatID == "" {
		return nil, ErrMissingChat
	}
	messages, err := s.store.Messages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	return messages, nil
}

// Chats lists a user's chats newest first.
func (s *Service) Chats(ctx context.Context, userID string) ([]models.Conversation, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	chats, err := s.store.Chats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return chats, nil
}

func (s *Service) Delete(ctx context.Context, chatID string) error {
	if chatID == "" {
		return ErrMissingChat
	}
	if err := s.store.DeleteChat(ctx, chatID); err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	return nil
}

func (s *Service) Rename(ctx context.Context, chatID, title string) error {
	if chatID == "" {
		return ErrMissingChat
	}
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if err := s.store.RenameChat(ctx, chatID, models.TitleFromMessage(title)); err != nil {
		return fmt.Errorf("rename chat: %w", err)
	}
	return nil
}
