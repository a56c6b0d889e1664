package webserver

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/microgrants/grant-portal/src/portal/config"
	"github.com/microgrants/grant-portal/src/portal/data"
	"github.com/microgrants/grant-portal/src/portal/notify"
)

func New(cfg config.Config, mongo *data.Mongo, rdb *redis.Client, dispatcher *notify.Dispatcher, log *zap.Logger) *gin.Engine {
	g := gin.New()
	g.Use(gin.Recovery(), RequestID(), RequestLogger(log))
	attachRoutes(g, cfg, mongo, rdb, dispatcher, log)
	return g
}
