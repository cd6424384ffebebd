package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/models"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/response"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware kimlik doğrulama middleware'ini başlatır
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractBearerToken Authorization başlığından bearer token'ı çıkarır.
// Başlık eksik veya biçimsizse boş döner; token doğrulama hiç çağrılmaz.
func extractBearerToken(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthenticateAdmin yazma yapan tüm rotaların tek yetkilendirme noktasıdır.
// Kimlik çözülemezse 401 döner ve istek işlenmez; başarısızlık nedenleri
// ayrıştırılmadan tek tip raporlanır.
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := extractBearerToken(authHeader)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Yalnızca admin rolü kabul edilir
		if claims.Role != models.AdminRole {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kimliği bağlama yaz
		c.Set("adminEmail", claims.Email)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// CurrentAdmin bağlamdan doğrulanmış admin kimliğini okur
func CurrentAdmin(c *gin.Context) (models.AdminUser, bool) {
	email, ok := c.Get("adminEmail")
	if !ok {
		return models.AdminUser{}, false
	}

	role, _ := c.Get("role")
	roleStr, _ := role.(string)
	emailStr, _ := email.(string)

	return models.AdminUser{Email: emailStr, Role: roleStr}, true
}
