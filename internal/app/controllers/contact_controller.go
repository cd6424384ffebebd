package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/models"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services/container"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/code"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/response"
	"github.com/hamzakyb/hmz-solutions-sub001/pkg/logger"
)

// InterfaceContactController iletişim denetleyicisi arayüzü
type InterfaceContactController interface {
	CreateMessage()
	GetMessages()
	UpdateMessageStatus()
}

// ContactController iletişim formu isteklerini işler
type ContactController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContactController yeni bir iletişim denetleyicisi oluşturur
func NewContactController(ctx *gin.Context, container *container.ServiceContainer) *ContactController {
	return &ContactController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateMessageRequest iletişim formu gönderimi
type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// UpdateMessageStatusRequest mesaj durumu güncelleme isteği
type UpdateMessageStatusRequest struct {
	Status string `json:"status" binding:"required" example:"read"`
}

// HandleContactFunc iletişim isteklerini işleyen Gin handler döndürür
func HandleContactFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContactController(ctx, container)

		switch method {
		case "createMessage":
			controller.CreateMessage()
		case "getMessages":
			controller.GetMessages()
		case "updateMessageStatus":
			controller.UpdateMessageStatus()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

func (c *ContactController) contactService() services.InterfaceContactService {
	return c.Container.GetService("contact").(services.InterfaceContactService)
}

// Gönderen IP'si proxy başlıklarından öncelik sırasıyla çözümlenir
func resolveClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("x-forwarded-for"); forwarded != "" {
		// İlk girdi özgün istemcidir
		parts := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if ip := c.GetHeader("cf-connecting-ip"); ip != "" {
		return ip
	}
	if ip := c.GetHeader("x-real-ip"); ip != "" {
		return ip
	}
	if ip := c.GetHeader("true-client-ip"); ip != "" {
		return ip
	}
	return "unknown"
}

// 1 CreateMessage herkese açık iletişim formu gönderimini kaydeder
// @Summary      Submit a contact message
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        request body CreateMessageRequest true "Message fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Router       /contact [post]
func (c *ContactController) CreateMessage() {
	var req CreateMessageRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		response.Fail(c.Ctx, code.ErrContactFieldsRequired)
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
		IP:      resolveClientIP(c.Ctx),
	}

	messageID, err := c.contactService().CreateMessage(c.Ctx.Request.Context(), msg)
	if err != nil {
		logger.Error("iletişim mesajı kaydedilemedi: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.OK(c.Ctx, gin.H{
		"success":   true,
		"messageId": messageID,
		"message":   "Mesajınız başarıyla gönderildi",
	})
}

// 2 GetMessages en yeni 100 mesajı döndürür
// @Summary      List contact messages
// @Tags         Contact
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorBody
// @Router       /contact [get]
// @Security     BearerAuth
func (c *ContactController) GetMessages() {
	messages, err := c.contactService().GetRecentMessages(c.Ctx.Request.Context())
	if err != nil {
		logger.Error("iletişim mesajları sorgusu başarısız: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.OK(c.Ctx, gin.H{
		"messages": messages,
		"total":    len(messages),
	})
}

// 3 UpdateMessageStatus mesaj durumunu ilerletir (new -> read -> replied)
// @Summary      Update message status
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        id path string true "Message id"
// @Param        request body UpdateMessageStatusRequest true "New status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /contact/{id}/status [put]
// @Security     BearerAuth
func (c *ContactController) UpdateMessageStatus() {
	id := c.Ctx.Param("id")

	var req UpdateMessageStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	if !models.ValidMessageStatus(req.Status) {
		response.Fail(c.Ctx, code.ErrInvalidStatus)
		return
	}

	err := c.contactService().UpdateMessageStatus(c.Ctx.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidMessageID), errors.Is(err, services.ErrMessageNotFound):
			response.NotFound(c.Ctx, code.ErrMessageNotFound)
		default:
			logger.Error("mesaj durumu güncellenemedi (%s): %v", id, err)
			response.Fail(c.Ctx, code.ErrDatabase)
		}
		return
	}

	response.OK(c.Ctx, gin.H{
		"success": true,
		"message": "Mesaj durumu güncellendi",
	})
}
