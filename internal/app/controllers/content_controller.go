package controllers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/app/middleware"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services/container"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/code"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/response"
	"github.com/hamzakyb/hmz-solutions-sub001/pkg/logger"
)

// InterfaceContentController site içeriği denetleyicisi arayüzü
type InterfaceContentController interface {
	GetContent()
	UpsertContent()
}

// ContentController bölüm bazlı içerik isteklerini işler
type ContentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContentController yeni bir içerik denetleyicisi oluşturur
func NewContentController(ctx *gin.Context, container *container.ServiceContainer) *ContentController {
	return &ContentController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpsertContentRequest içerik yazma isteği
type UpsertContentRequest struct {
	Section string                 `json:"section"`
	Data    map[string]interface{} `json:"data"`
}

// HandleContentFunc içerik isteklerini işleyen Gin handler döndürür
func HandleContentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContentController(ctx, container)

		switch method {
		case "getContent":
			controller.GetContent()
		case "upsertContent":
			controller.UpsertContent()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

func (c *ContentController) contentService() services.InterfaceContentService {
	return c.Container.GetService("content").(services.InterfaceContentService)
}

// 1 GetContent bölüm içeriğini döndürür; kayıt yoksa null döner
// @Summary      Get site content by section
// @Tags         Content
// @Produce      json
// @Param        section query string true "Section key, e.g. hero"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Router       /content [get]
func (c *ContentController) GetContent() {
	section := c.Ctx.Query("section")
	if section == "" {
		response.Fail(c.Ctx, code.ErrSectionRequired)
		return
	}

	content, err := c.contentService().GetContent(c.Ctx.Request.Context(), section)
	if err != nil {
		logger.Error("site içeriği sorgusu başarısız (%s): %v", section, err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.OK(c.Ctx, gin.H{"content": content})
}

// 2 UpsertContent bölüm içeriğini yazar; ilk yazmada doküman oluşur
// @Summary      Upsert site content
// @Tags         Content
// @Accept       json
// @Produce      json
// @Param        request body UpsertContentRequest true "Section and data"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Router       /content [post]
// @Security     BearerAuth
func (c *ContentController) UpsertContent() {
	var req UpsertContentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	if req.Section == "" {
		response.Fail(c.Ctx, code.ErrSectionRequired)
		return
	}

	admin, _ := middleware.CurrentAdmin(c.Ctx)

	err := c.contentService().UpsertContent(c.Ctx.Request.Context(), req.Section, bson.M(req.Data), admin.Email)
	if err != nil {
		logger.Error("site içeriği yazılamadı (%s): %v", req.Section, err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.OK(c.Ctx, gin.H{
		"success": true,
		"message": "İçerik başarıyla güncellendi",
	})
}
