package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/app/middleware"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/models"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services/container"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/code"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/response"
	"github.com/hamzakyb/hmz-solutions-sub001/pkg/logger"
)

// InterfaceSettingsController site ayarları denetleyicisi arayüzü
type InterfaceSettingsController interface {
	GetSettings()
	UpdateSettings()
}

// SettingsController tekil site ayarları isteklerini işler
type SettingsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSettingsController yeni bir ayar denetleyicisi oluşturur
func NewSettingsController(ctx *gin.Context, container *container.ServiceContainer) *SettingsController {
	return &SettingsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSettingsFunc ayar isteklerini işleyen Gin handler döndürür
func HandleSettingsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSettingsController(ctx, container)

		switch method {
		case "getSettings":
			controller.GetSettings()
		case "updateSettings":
			controller.UpdateSettings()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

func (c *SettingsController) settingsService() services.InterfaceSettingsService {
	return c.Container.GetService("settings").(services.InterfaceSettingsService)
}

// 1 GetSettings ayarları döndürür; kayıt yoksa varsayılanlara düşer
// @Summary      Get site settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /settings [get]
func (c *SettingsController) GetSettings() {
	settings, err := c.settingsService().GetSettings(c.Ctx.Request.Context())
	if err != nil {
		logger.Error("site ayarları sorgusu başarısız: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.OK(c.Ctx, gin.H{"settings": settings})
}

// 2 UpdateSettings tekil dokümanı tam değiştirme-upsert ile yazar
// @Summary      Replace site settings
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body models.SiteSettings true "Settings document"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorBody
// @Router       /settings [post]
// @Security     BearerAuth
func (c *SettingsController) UpdateSettings() {
	var settings models.SiteSettings
	if err := c.Ctx.ShouldBindJSON(&settings); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	admin, _ := middleware.CurrentAdmin(c.Ctx)
	settings.UpdatedBy = admin.Email

	if err := c.settingsService().ReplaceSettings(c.Ctx.Request.Context(), &settings); err != nil {
		logger.Error("site ayarları yazılamadı: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.OK(c.Ctx, gin.H{
		"success": true,
		"message": "Ayarlar başarıyla kaydedildi",
	})
}
