package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
	"github.com/hamzakyb/hmz-solutions-sub001/pkg/logger"
)

// Koleksiyon adları
const (
	CollectionBlogPosts       = "blogPosts"
	CollectionContactMessages = "contactMessages"
	CollectionSiteContent     = "siteContent"
	CollectionSiteSettings    = "siteSettings"
)

var (
	client     *mongo.Client
	clientErr  error
	clientOnce sync.Once
)

// GetDatabase tekil MongoDB bağlantısını bekler ve yapılandırılmış
// veritabanına kapsanmış bir handle döndürür. Bağlantı süreç ömrü boyunca
// bir kez kurulur ve tüm istekler arasında paylaşılır.
func GetDatabase() (*mongo.Database, error) {
	cfg := config.GetConfig()

	clientOnce.Do(func() {
		if cfg.MongoURI == "" {
			clientErr = fmt.Errorf("MONGODB_URI tanımlı değil")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Client().
			ApplyURI(cfg.MongoURI).
			SetMaxPoolSize(100).
			SetMinPoolSize(5).
			SetMaxConnIdleTime(30 * time.Minute)

		client, clientErr = mongo.Connect(ctx, opts)
		if clientErr != nil {
			logger.Error("MongoDB bağlantısı kurulamadı: %v", clientErr)
			return
		}

		logger.Info("MongoDB bağlantısı kuruldu: %s", cfg.MongoDBName)
	})

	if clientErr != nil {
		return nil, clientErr
	}

	return client.Database(cfg.MongoDBName), nil
}

// Collection adı verilen koleksiyona tipli erişim sağlar
func Collection(name string) (*mongo.Collection, error) {
	db, err := GetDatabase()
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Ping bağlantının ayakta olduğunu doğrular
func Ping(ctx context.Context) error {
	if _, err := GetDatabase(); err != nil {
		return err
	}
	return client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes gerekli indeksleri oluşturur. Slug üzerindeki unique indeks,
// eş zamanlı iki oluşturma isteğinin aynı slug'ı yazmasını depolama
// katmanında engeller; rotalardaki ön kontrol yalnızca kullanıcı dostu
// 400 yanıtı içindir.
func EnsureIndexes(ctx context.Context) error {
	posts, err := Collection(CollectionBlogPosts)
	if err != nil {
		return err
	}

	_, err = posts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("slug indeksi oluşturulamadı: %v", err)
	}

	messages, err := Collection(CollectionContactMessages)
	if err != nil {
		return err
	}

	_, err = messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("createdAt indeksi oluşturulamadı: %v", err)
	}

	return nil
}

// Close bağlantıyı kapatır (graceful shutdown için)
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
