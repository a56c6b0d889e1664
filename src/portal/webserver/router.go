package webserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/microgrants/grant-portal/src/portal/config"
	"github.com/microgrants/grant-portal/src/portal/data"
	"github.com/microgrants/grant-portal/src/portal/notify"
)

func attachRoutes(r *gin.Engine, cfg config.Config, mongo *data.Mongo, rdb *redis.Client, dispatcher *notify.Dispatcher, log *zap.Logger) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	appH := NewApplications(data.NewApplications(mongo), rdb, dispatcher, log)
	healthH := NewHealth(mongo, log)

	r.POST("/applications", appH.Submit)
	r.GET("/applications", appH.List)
	r.GET("/health/db", healthH.Database)
}
