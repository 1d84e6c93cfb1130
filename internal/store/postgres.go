package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kundank11/GemFlow/internal/models"
)

// Postgres persists chats and messages in a hosted postgres database. The
// hosted project owns the schema; nothing is migrated from here.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a pgx pool from the DSN and verifies connectivity with
// a ping before returning.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(normalizeDSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}
	if cfg.MaxConns == 0 {
		cfg.MaxConns = 4
	}
	if cfg.MaxConnIdleTime == 0 {
		cfg.MaxConnIdleTime = 5 * time.Minute
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: new pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// normalizeDSN converts SQLAlchemy-style driver suffixes sometimes found in
// .env files to a pgx-compatible DSN.
func normalizeDSN(dsn string) string {
	s := strings.TrimSpace(dsn)
	s = strings.Replace(s, "postgresql+asyncpg://", "postgresql://", 1)
	s = strings.Replace(s, "postgres+asyncpg://", "postgres://", 1)
	return s
}

func (s *Postgres) CreateChat(ctx context.Context, chat *models.Conversation) error {
	chat.CreatedAt = time.Now().UTC()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO chats (id, user_id, title, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4)`,
		chat.ID, chat.UserID, chat.Title, chat.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres: create chat: %w", err)
	}
	return nil
}

func (s *Postgres) SaveMessage(ctx context.Context, msg *models.Message) error {
	msg.CreatedAt = time.Now().UTC()
	err := s.pool.QueryRow(ctx, `
		INSERT INTO messages (chat_id, role, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		msg.ChatID, msg.Role, msg.Content, msg.CreatedAt).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("postgres: save message: %w", err)
	}
	return nil
}

func (s *Postgres) Messages(ctx context.Context, chatID string) ([]models.Message, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, chat_id, role, content, created_at
		FROM messages
		WHERE chat_id = $1
		ORDER BY created_at ASC, id ASC`, chatID)
	if err != nil {
		return nil, fmt.Errorf("postgres: query messages: %w", err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: read messages: %w", err)
	}
	return messages, nil
}

func (s *Postgres) Chats(ctx context.Context, userID string) ([]models.Conversation, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, created_at
		FROM chats
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: query chats: %w", err)
	}
	defer rows.Close()

	chats := make([]models.Conversation, 0)
	for rows.Next() {
		c := models.Conversation{UserID: userID}
		if err := rows.Scan(&c.ID, &c.Title, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan chat: %w", err)
		}
		chats = append(chats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: read chats: %w", err)
	}
	return chats, nil
}

func (s *Postgres) RenameChat(ctx context.Context, chatID, title string) error {
	if _, err := s.pool.Exec(ctx, "UPDATE chats SET title = $1 WHERE id = $2", title, chatID); err != nil {
		return fmt.Errorf("postgres: rename chat: %w", err)
	}
	return nil
}

func (s *Postgres) DeleteChat(ctx context.Context, chatID string) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM messages WHERE chat_id = $1", chatID); err != nil {
		return fmt.Errorf("postgres: delete messages: %w", err)
	}
	if _, err := s.pool.Exec(ctx, "DELETE FROM chats WHERE id = $1", chatID); err != nil {
		return fmt.Errorf("postgres: delete chat: %w", err)
	}
	return nil
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Postgres) Close() error {
	s.pool.Close()
	return nil
}
