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

// InterfaceAuthController kimlik doğrulama denetleyicisi arayüzü
type InterfaceAuthController interface {
	Login()
}

// AuthController admin giriş isteklerini işler
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController yeni bir kimlik doğrulama denetleyicisi oluşturur
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest giriş isteği
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@hmzsolutions.com"`
	Password string `json:"password" binding:"required" example:"Admin@123"`
}

// HandleAuthFunc kimlik doğrulama isteklerini işleyen Gin handler döndürür
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// Login admin girişini işler
// @Summary      Admin Login
// @Description  Validates admin credentials and returns a signed JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthNotConfigured) {
			// Hangi değerin eksik olduğu yanıtta asla açıklanmaz
			logger.Error("admin girişi başarısız: %v", err)
			response.Fail(c.Ctx, code.ErrConfiguration)
			return
		}
		response.Fail(c.Ctx, code.ErrLoginFailed)
		return
	}

	response.OK(c.Ctx, gin.H{
		"success": true,
		"token":   result.Token,
		"admin":   result.Admin,
	})
}
