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

// InterfaceContentService bölüm bazlı site içeriği servis arayüzü
type InterfaceContentService interface {
	GetContent(ctx context.Context, section string) (*models.SiteContent, error)
	UpsertContent(ctx context.Context, section string, data bson.M, updatedBy string) error
}

// ContentService bölüm adıyla anahtarlanan içerik blokları için servis
type ContentService struct {
	DB     *mongo.Database
	Config *config.Config
}

// NewContentService yeni bir içerik servisi oluşturur
func NewContentService(db *mongo.Database, cfg *config.Config) InterfaceContentService {
	return &ContentService{
		DB:     db,
		Config: cfg,
	}
}

func (s *ContentService) collection() *mongo.Collection {
	return s.DB.Collection(database.CollectionSiteContent)
}

// GetContent bölüm içeriğini döndürür; kayıt yoksa nil döner
func (s *ContentService) GetContent(ctx context.Context, section string) (*models.SiteContent, error) {
	var content models.SiteContent
	err := s.collection().FindOne(ctx, bson.M{"section": section}).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

// UpsertContent bölüm içeriğini yazar. İlk yazmada doküman oluşur, sonraki
// yazmalarda değiştirilir; "mevcut değeri ayarla" semantiği her durumda
// idempotenttir.
func (s *ContentService) UpsertContent(ctx context.Context, section string, data bson.M, updatedBy string) error {
	_, err := s.collection().UpdateOne(ctx,
		bson.M{"section": section},
		bson.M{"$set": bson.M{
			"section":   section,
			"data":      data,
			"updatedAt": time.Now(),
			"updatedBy": updatedBy,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
