package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/models"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/database"
)

// InterfaceSettingsService site ayarları servis arayüzü
type InterfaceSettingsService interface {
	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	ReplaceSettings(ctx context.Context, settings *models.SiteSettings) error
}

// SettingsService tekil site ayarları dokümanı için servis
type SettingsService struct {
	DB     *mongo.Database
	Config *config.Config
}

// NewSettingsService yeni bir ayar servisi oluşturur
func NewSettingsService(db *mongo.Database, cfg *config.Config) InterfaceSettingsService {
	return &SettingsService{
		DB:     db,
		Config: cfg,
	}
}

func (s *SettingsService) collection() *mongo.Collection {
	return s.DB.Collection(database.CollectionSiteSettings)
}

// GetSettings ayarları döndürür; kayıt yoksa süreç içi varsayılanlara düşer
func (s *SettingsService) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.collection().FindOne(ctx, bson.M{"_id": models.SiteSettingsID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.DefaultSiteSettings(), nil
		}
		return nil, err
	}
	return &settings, nil
}

// ReplaceSettings tekil dokümanı tam değiştirme-upsert ile yazar.
// Aynı yük ile tekrarlanan yazmalar tek bir "global" kayıt bırakır.
func (s *SettingsService) ReplaceSettings(ctx context.Context, settings *models.SiteSettings) error {
	settings.ID = models.SiteSettingsID
	settings.UpdatedAt = time.Now()

	_, err := s.collection().ReplaceOne(ctx,
		bson.M{"_id": models.SiteSettingsID},
		settings,
		options.Replace().SetUpsert(true),
	)
	return err
}
