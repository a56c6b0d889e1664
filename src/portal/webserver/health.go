package webserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 5 * time.Second

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	db  Pinger
	log *zap.Logger
}

func NewHealth(db Pinger, log *zap.Logger) Health {
	return Health{db: db, log: log}
}

func (h Health) Database(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("database health check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     err.Error(),
			"timestamp": now,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "MongoDB connection successful",
		"timestamp": now,
	})
}
