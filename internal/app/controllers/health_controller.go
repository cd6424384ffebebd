package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/app/middleware"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services/container"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/code"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/response"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/database"
)

// HealthController sağlık kontrolü denetleyicisi
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController yeni bir sağlık denetleyicisi oluşturur
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc sağlık kontrolü isteklerini işleyen Gin handler döndürür
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		case "cacheStats":
			controller.CacheStats()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// Ping basit sağlık kontrolü
func (c *HealthController) Ping() {
	response.OK(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status veritabanı erişilebilirliği dahil durum raporu döndürür
func (c *HealthController) Status() {
	cfg := c.Container.GetService("config").(*config.Config)

	dbStatus := "up"
	ctx, cancel := context.WithTimeout(c.Ctx.Request.Context(), 2*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		dbStatus = "down"
	}

	response.OK(c.Ctx, gin.H{
		"status":   "healthy",
		"database": dbStatus,
		"env":      cfg.EnvType,
		"time":     time.Now().Format(time.RFC3339),
	})
}

// CacheStats yanıt önbelleği istatistiklerini döndürür
func (c *HealthController) CacheStats() {
	response.OK(c.Ctx, gin.H{
		"cache": middleware.CacheStats(),
	})
}
