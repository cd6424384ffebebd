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
	"github.com/hamzakyb/hmz-solutions-sub001/pkg/logger"
)

var (
	// ErrPostNotFound yazı bulunamadığında döner
	ErrPostNotFound = errors.New("blog yazısı bulunamadı")
	// ErrSlugTaken slug başka bir yazıda kayıtlıyken döner
	ErrSlugTaken = errors.New("slug zaten kullanılıyor")
	// ErrInvalidPostID kimlik geçerli bir ObjectID değilken döner
	ErrInvalidPostID = errors.New("geçersiz yazı kimliği")
)

// BlogListFilter liste sorgusunun parametreleri
type BlogListFilter struct {
	Published *bool
	Slug      string
	Tag       string
	Limit     int64
	Skip      int64
}

// InterfaceBlogService blog servis arayüzü
type InterfaceBlogService interface {
	GetPosts(ctx context.Context, filter BlogListFilter) ([]models.BlogPost, int64, error)
	GetPostByID(ctx context.Context, id string) (*models.BlogPost, error)
	CreatePost(ctx context.Context, post *models.BlogPost) (string, error)
	UpdatePost(ctx context.Context, id string, set bson.M) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
}

// BlogService blog yazıları için veri erişim servisi
type BlogService struct {
	DB     *mongo.Database
	Config *config.Config
}

// NewBlogService yeni bir blog servisi oluşturur
func NewBlogService(db *mongo.Database, cfg *config.Config) InterfaceBlogService {
	return &BlogService{
		DB:     db,
		Config: cfg,
	}
}

func (s *BlogService) collection() *mongo.Collection {
	return s.DB.Collection(database.CollectionBlogPosts)
}

// 1 GetPosts filtreye göre yazıları listeler; toplam sayıyla birlikte döner
func (s *BlogService) GetPosts(ctx context.Context, filter BlogListFilter) ([]models.BlogPost, int64, error) {
	query := bson.M{}
	if filter.Published != nil {
		query["published"] = *filter.Published
	}
	if filter.Slug != "" {
		query["slug"] = filter.Slug
	}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}

	total, err := s.collection().CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(filter.Skip).
		SetLimit(filter.Limit)

	cursor, err := s.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// 2 GetPostByID yazıyı döndürür ve görüntülenme sayacını artırır.
// Sayaç artışı okumaya bağlı değildir; başarısız olursa yalnızca loglanır.
func (s *BlogService) GetPostByID(ctx context.Context, id string) (*models.BlogPost, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidPostID
	}

	var post models.BlogPost
	if err := s.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if _, err := s.collection().UpdateByID(ctx, objectID, bson.M{"$inc": bson.M{"views": 1}}); err != nil {
		logger.Warning("görüntülenme sayacı artırılamadı (%s): %v", id, err)
	} else {
		post.Views++
	}

	return &post, nil
}

// 3 CreatePost yeni yazı oluşturur. Slug benzersizliği önce sorguyla
// denetlenir; depolama katmanındaki unique indeks yarış durumunu kapatır.
func (s *BlogService) CreatePost(ctx context.Context, post *models.BlogPost) (string, error) {
	count, err := s.collection().CountDocuments(ctx, bson.M{"slug": post.Slug})
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrSlugTaken
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Views = 0
	if post.Tags == nil {
		post.Tags = []string{}
	}

	result, err := s.collection().InsertOne(ctx, post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrSlugTaken
		}
		return "", err
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("beklenmeyen insert kimliği")
	}
	return objectID.Hex(), nil
}

// 4 UpdatePost yazıyı kısmi olarak günceller. Slug değişiyorsa benzersizlik
// denetimi kaydın kendi kimliği hariç tutularak yapılır.
func (s *BlogService) UpdatePost(ctx context.Context, id string, set bson.M) (*models.BlogPost, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidPostID
	}

	if slug, ok := set["slug"].(string); ok && slug != "" {
		count, err := s.collection().CountDocuments(ctx, bson.M{
			"slug": slug,
			"_id":  bson.M{"$ne": objectID},
		})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugTaken
		}
	}

	set["updatedAt"] = time.Now()

	result, err := s.collection().UpdateByID(ctx, objectID, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrPostNotFound
	}

	var post models.BlogPost
	if err := s.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// 5 DeletePost yazıyı siler
func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidPostID
	}

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}
