package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/app/controllers"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/app/middleware"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services/container"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
)

// SetupRouter yapılandırılmış router'ı oluşturur ve döndürür
func SetupRouter(db *mongo.Database, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Servis konteynerini oluştur
	serviceContainer := container.NewServiceContainer(db, cfg)
	// Kimlik doğrulama middleware'ini başlat
	middleware.InitAuthMiddleware(cfg)

	// Rotaları kaydet
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes tüm API rotalarını yapılandırır
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API kök yolu
	api := r.Group("/api")
	// Herkese açık rotalar
	registerPublicRoutes(api, container)
	// Kimlik doğrulama gerektiren rotalar
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes herkese açık rotaları kaydeder
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// IP başına sınırlama - saniyede 10 istek, en fazla 20 ani istek
	api.Use(middleware.IPRateLimiter(10, 20))

	// Sağlık kontrolü rotaları
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))

	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))
	healthGroup.GET("/cache-stats", controllers.HandleHealthFunc(container, "cacheStats"))

	// Admin girişi - kaba kuvvete karşı sıkı sınır
	api.POST("/auth/login", middleware.CombinedRateLimiter(1, 5), controllers.HandleAuthFunc(container, "login"))

	// Blog rotaları. Liste kısa süreli önbelleğe alınır; tekil yazı
	// görüntülenme sayacı nedeniyle önbelleğe alınmaz.
	api.GET("/blog", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleBlogFunc(container, "getPosts"))
	api.GET("/blog/:id", controllers.HandleBlogFunc(container, "getPost"))

	// İletişim formu - spam'e karşı sıkı sınır
	api.POST("/contact", middleware.CombinedRateLimiter(1, 5), controllers.HandleContactFunc(container, "createMessage"))

	// Site içeriği ve ayarları (okuma herkese açık)
	api.GET("/content", controllers.HandleContentFunc(container, "getContent"))
	api.GET("/settings", controllers.HandleSettingsFunc(container, "getSettings"))
}

// registerAuthenticatedRoutes admin yetkisi gerektiren rotaları kaydeder
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// Blog yönetimi
	auth.POST("/blog", controllers.HandleBlogFunc(container, "createPost"))
	auth.PUT("/blog/:id", controllers.HandleBlogFunc(container, "updatePost"))
	auth.DELETE("/blog/:id", controllers.HandleBlogFunc(container, "deletePost"))

	// İletişim mesajları
	auth.GET("/contact", controllers.HandleContactFunc(container, "getMessages"))
	auth.PUT("/contact/:id/status", controllers.HandleContactFunc(container, "updateMessageStatus"))

	// Site içeriği ve ayarları (yazma)
	auth.POST("/content", controllers.HandleContentFunc(container, "upsertContent"))
	auth.POST("/settings", controllers.HandleSettingsFunc(container, "updateSettings"))

	// Dosya yükleme
	auth.POST("/upload", controllers.HandleUploadFunc(container, "upload"))
}
