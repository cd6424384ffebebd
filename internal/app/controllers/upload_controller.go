package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services/container"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/code"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/response"
	"github.com/hamzakyb/hmz-solutions-sub001/pkg/logger"
)

// InterfaceUploadController dosya yükleme denetleyicisi arayüzü
type InterfaceUploadController interface {
	Upload()
}

// UploadController dosya yükleme isteklerini işler
type UploadController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUploadController yeni bir yükleme denetleyicisi oluşturur
func NewUploadController(ctx *gin.Context, container *container.ServiceContainer) *UploadController {
	return &UploadController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleUploadFunc yükleme isteklerini işleyen Gin handler döndürür
func HandleUploadFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUploadController(ctx, container)

		switch method {
		case "upload":
			controller.Upload()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// Upload istek gövdesini blob depolamaya aktarır
// @Summary      Upload a file
// @Description  Streams the raw request body to blob storage and returns the stored object descriptor
// @Tags         Upload
// @Accept       octet-stream
// @Produce      json
// @Param        filename query string true "Original file name"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Router       /upload [post]
// @Security     BearerAuth
func (c *UploadController) Upload() {
	filename := c.Ctx.Query("filename")
	if filename == "" {
		response.Fail(c.Ctx, code.ErrFilenameRequired)
		return
	}

	if c.Ctx.Request.Body == nil || c.Ctx.Request.ContentLength == 0 {
		response.Fail(c.Ctx, code.ErrEmptyFile)
		return
	}

	contentType := c.Ctx.GetHeader("Content-Type")

	uploadService := c.Container.GetService("upload").(services.InterfaceUploadService)
	result, err := uploadService.Upload(
		c.Ctx.Request.Context(),
		filename,
		contentType,
		c.Ctx.Request.Body,
		c.Ctx.Request.ContentLength,
	)
	if err != nil {
		if errors.Is(err, services.ErrStorageNotConfigured) {
			logger.Error("dosya yüklemesi başarısız: %v", err)
			response.Fail(c.Ctx, code.ErrConfiguration)
			return
		}
		logger.Error("dosya yüklemesi başarısız (%s): %v", filename, err)
		response.Fail(c.Ctx, code.ErrUploadFailed)
		return
	}

	response.OK(c.Ctx, gin.H{
		"success":     true,
		"url":         result.URL,
		"pathname":    result.Pathname,
		"contentType": result.ContentType,
		"size":        result.Size,
	})
}
