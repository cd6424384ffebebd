package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/models"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/database"
)

var (
	// ErrMessageNotFound mesaj bulunamadığında döner
	ErrMessageNotFound = errors.New("mesaj bulunamadı")
	// ErrInvalidMessageID kimlik geçerli bir ObjectID değilken döner
	ErrInvalidMessageID = errors.New("geçersiz mesaj kimliği")
)

// Admin panelinde listelenen en fazla mesaj sayısı
const recentMessageLimit = 100

// InterfaceContactService iletişim mesajı servis arayüzü
type InterfaceContactService interface {
	CreateMessage(ctx context.Context, msg *models.ContactMessage) (string, error)
	GetRecentMessages(ctx context.Context) ([]models.ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, id, status string) error
}

// ContactService iletişim formu gönderimleri için veri erişim servisi
type ContactService struct {
	DB     *mongo.Database
	Config *config.Config
}

// NewContactService yeni bir iletişim servisi oluşturur
func NewContactService(db *mongo.Database, cfg *config.Config) InterfaceContactService {
	return &ContactService{
		DB:     db,
		Config: cfg,
	}
}

func (s *ContactService) collection() *mongo.Collection {
	return s.DB.Collection(database.CollectionContactMessages)
}

// 1 CreateMessage herkese açık form gönderimini kaydeder; durum "new" başlar
func (s *ContactService) CreateMessage(ctx context.Context, msg *models.ContactMessage) (string, error) {
	msg.CreatedAt = time.Now()
	msg.Status = models.MessageStatusNew

	result, err := s.collection().InsertOne(ctx, msg)
	if err != nil {
		return "", err
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("beklenmeyen insert kimliği")
	}
	return objectID.Hex(), nil
}

// 2 GetRecentMessages en yeni 100 mesajı oluşturulma tarihine göre döndürür
func (s *ContactService) GetRecentMessages(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(recentMessageLimit)

	cursor, err := s.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []models.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// 3 UpdateMessageStatus mesaj durumunu günceller (new -> read -> replied)
func (s *ContactService) UpdateMessageStatus(ctx context.Context, id, status string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidMessageID
	}

	result, err := s.collection().UpdateByID(ctx, objectID, bson.M{
		"$set": bson.M{"status": status},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}
