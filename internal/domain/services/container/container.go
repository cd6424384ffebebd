package container

import (
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
)

// ServiceContainer tüm servislerin bağımlılık enjeksiyonunu yönetir
type ServiceContainer struct {
	db     *mongo.Database
	config *config.Config

	// Temel servisler
	jwtService services.InterfaceJWTService

	// İş servisleri
	blogService     services.InterfaceBlogService
	contactService  services.InterfaceContactService
	contentService  services.InterfaceContentService
	settingsService services.InterfaceSettingsService
	uploadService   services.InterfaceUploadService

	mu sync.RWMutex
}

// NewServiceContainer yeni bir servis konteyneri oluşturur
func NewServiceContainer(db *mongo.Database, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("veritabanı bağlantısı boş")
	}

	if cfg == nil {
		panic("yapılandırma boş")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices tüm servisleri başlatır
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Temel servisler
	c.jwtService = services.NewJWTService(c.config)

	// İş servisleri
	c.blogService = services.NewBlogService(c.db, c.config)
	c.contactService = services.NewContactService(c.db, c.config)
	c.contentService = services.NewContentService(c.db, c.config)
	c.settingsService = services.NewSettingsService(c.db, c.config)
	c.uploadService = services.NewUploadService(c.config)
}

// GetService verilen ada sahip servisi döndürür
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "blog":
		return c.blogService
	case "contact":
		return c.contactService
	case "content":
		return c.contentService
	case "settings":
		return c.settingsService
	case "upload":
		return c.uploadService
	default:
		return nil
	}
}

// SetService verilen ada sahip servisi değiştirir (testlerde sahte servis
// enjekte etmek için)
func (c *ServiceContainer) SetService(name string, svc interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case "jwt":
		c.jwtService = svc.(services.InterfaceJWTService)
	case "blog":
		c.blogService = svc.(services.InterfaceBlogService)
	case "contact":
		c.contactService = svc.(services.InterfaceContactService)
	case "content":
		c.contentService = svc.(services.InterfaceContentService)
	case "settings":
		c.settingsService = svc.(services.InterfaceSettingsService)
	case "upload":
		c.uploadService = svc.(services.InterfaceUploadService)
	}
}
