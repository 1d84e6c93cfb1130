package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the API surface. CORS is wide open, matching the UI's
// expectation of calling the backend from any origin.
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger), cors.Default())

	r.POST("/chat", h.SendMessage)
	r.GET("/chats", h.ListChats)
	r.GET("/chat/:chat_id", h.GetChat)
	r.DELETE("/chat/:chat_id", h.DeleteChat)
	r.PATCH("/chat/:chat_id", h.RenameChat)
	r.GET("/healthz", h.Health)

	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}
