package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kundank11/GemFlow/internal/chat"
	"github.com/kundank11/GemFlow/internal/models"
)

// ChatService is what the handlers need from the orchestration layer.
type ChatService interface {
	SendTurn(ctx context.Context, chatID, userID, text string) (string, string, error)
	Transcript(ctx context.Context, chatID string) ([]models.Message, error)
	Chats(ctx context.Context, userID string) ([]models.Conversation, error)
	Delete(ctx context.Context, chatID string) error
	Rename(ctx context.Context, chatID, title string) error
}

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	chats  ChatService
	health HealthChecker
	logger *zap.Logger
}

func NewHandler(chats ChatService, health HealthChecker, logger *zap.Logger) *Handler {
	return &Handler{chats: chats, health: health, logger: logger}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
	ChatID  string `json:"chat_id"`
	UserID  string `json:"user_id"`
}

type chatResponse struct {
	ChatID string `json:"chat_id"`
	Reply  string `json:"reply"`
}

type renameRequest struct {
	Title string `json:"title" binding:"required"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type chatSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type transcriptMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Details: err.Error()})
		return
	}

	chatID, reply, err := h.chats.SendTurn(c.Request.Context(), req.ChatID, req.UserID, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Details: err.Error()})
			return
		}
		h.logger.Error("turn failed",
			zap.String("chatID", req.ChatID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal_server_error", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, chatResponse{ChatID: chatID, Reply: reply})
}

func (h *Handler) ListChats(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Details: "user_id query parameter is required"})
		return
	}

	chats, err := h.chats.Chats(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list chats",
			zap.String("userID", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal_server_error", Details: err.Error()})
		return
	}

	summaries := make([]chatSummary, 0, len(chats))
	for _, ch := range chats {
		summaries = append(summaries, chatSummary{ID: ch.ID, Title: ch.Title, CreatedAt: ch.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "chats": summaries})
}

func (h *Handler) GetChat(c *gin.Context) {
	chatID := c.Param("chat_id")

	messages, err := h.chats.Transcript(c.Request.Context(), chatID)
	if err != nil {
		if errors.Is(err, chat.ErrMissingChat) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Details: err.Error()})
			return
		}
		h.logger.Error("failed to load transcript",
			zap.String("chatID", chatID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal_server_error", Details: err.Error()})
		return
	}

	out := make([]transcriptMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, transcriptMessage{Role: m.Role, Content: m.Content, CreatedAt: m.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"chat_id": chatID, "messages": out})
}

func (h *Handler) DeleteChat(c *gin.Context) {
	chatID := c.Param("chat_id")

	if err := h.chats.Delete(c.Request.Context(), chatID); err != nil {
		h.logger.Error("failed to delete chat",
			zap.String("chatID", chatID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal_server_error", Details: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) RenameChat(c *gin.Context) {
	chatID := c.Param("chat_id")

	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Details: err.Error()})
		return
	}

	if err := h.chats.Rename(c.Request.Context(), chatID, req.Title); err != nil {
		if errors.Is(err, chat.ErrEmptyTitle) || errors.Is(err, chat.ErrMissingChat) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Details: err.Error()})
			return
		}
		h.logger.Error("failed to rename chat",
			zap.String("chatID", chatID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal_server_error", Details: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Health(c *gin.Context) {
	if err := h.health.Ping(c.Request.Context()); err != nil {
		h.logger.Error("store unreachable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
