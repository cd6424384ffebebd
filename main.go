// @title           HMZ Solutions API
// @version         1.0
// @description     Marketing site backend with blog, contact and content management
// @contact.name    HMZ Solutions
// @contact.email   info@hmzsolutions.com

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/app/routes"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/database"
	"github.com/hamzakyb/hmz-solutions-sub001/pkg/logger"
)

func main() {
	// Log yapılandırmasını başlat
	if err := logger.Setup(); err != nil {
		fmt.Printf("log yapılandırması başlatılamadı: %v\n", err)
		os.Exit(1)
	}

	// .env dosyasını yükle
	if err := godotenv.Load(); err != nil {
		logger.Warning(".env dosyası yüklenemedi: %v", err)
		// Ortam değişkenleri başka yolla ayarlanmış olabilir, devam et
	} else {
		logger.Info(".env dosyası yüklendi")
	}

	// Yapılandırmayı al ve doğrula
	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("yapılandırma hatası: %v", err)
	}

	// Veritabanı bağlantısını kur
	db, err := database.GetDatabase()
	if err != nil {
		log.Fatalf("veritabanına bağlanılamadı: %v", err)
	}

	// İndeksleri oluştur. Geçici bağlantı hatası süreci durdurmaz;
	// istek seviyesinde 500 olarak yüzeye çıkar.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(ctx); err != nil {
		logger.Warning("indeksler oluşturulamadı: %v", err)
	}
	cancel()

	// Router'ı başlat
	r := routes.SetupRouter(db, cfg)

	// Sunucuyu başlat
	logger.Info("sunucu başlatıldı: http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Error("sunucu başlatılamadı: %v", err)
		os.Exit(1)
	}
}
