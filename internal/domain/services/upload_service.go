package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
)

// ErrStorageNotConfigured blob depolama yapılandırması eksikken döner
var ErrStorageNotConfigured = errors.New("blob depolama yapılandırması eksik")

// UploadResult yüklenen nesnenin tanımlayıcısı
type UploadResult struct {
	URL         string `json:"url"`
	Pathname    string `json:"pathname"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// InterfaceUploadService dosya yükleme servis arayüzü
type InterfaceUploadService interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (*UploadResult, error)
}

// UploadService S3 uyumlu blob depolamaya dosya yükler
type UploadService struct {
	Config *config.Config

	clientOnce sync.Once
	client     *s3.Client
	clientErr  error
}

// NewUploadService yeni bir yükleme servisi oluşturur. S3 istemcisi ilk
// yüklemede tembel olarak kurulur.
func NewUploadService(cfg *config.Config) InterfaceUploadService {
	return &UploadService{Config: cfg}
}

func (s *UploadService) getClient(ctx context.Context) (*s3.Client, error) {
	s.clientOnce.Do(func() {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(s.Config.S3Region),
		)
		if err != nil {
			s.clientErr = fmt.Errorf("AWS yapılandırması yüklenemedi: %v", err)
			return
		}

		var opts []func(*s3.Options)
		if s.Config.S3Endpoint != "" {
			// MinIO ve benzerleri için path-style adresleme
			opts = append(opts, func(o *s3.Options) {
				o.BaseEndpoint = aws.String(s.Config.S3Endpoint)
				o.UsePathStyle = true
			})
		}

		s.client = s3.NewFromConfig(awsCfg, opts...)
	})

	return s.client, s.clientErr
}

// Upload istek gövdesini nesne olarak yazar ve erişim tanımlayıcısı döndürür
func (s *UploadService) Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (*UploadResult, error) {
	if s.Config.S3Bucket == "" {
		return nil, ErrStorageNotConfigured
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	key := "uploads/" + uuid.NewString() + "-" + sanitizeFilename(filename)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Config.S3Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 put object: %v", err)
	}

	return &UploadResult{
		URL:         s.publicURL(key),
		Pathname:    key,
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (s *UploadService) publicURL(key string) string {
	if s.Config.S3PublicURL != "" {
		return strings.TrimRight(s.Config.S3PublicURL, "/") + "/" + key
	}
	if s.Config.S3Endpoint != "" {
		return strings.TrimRight(s.Config.S3Endpoint, "/") + "/" + s.Config.S3Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Config.S3Bucket, s.Config.S3Region, key)
}

// sanitizeFilename dosya adını nesne anahtarında güvenli hale getirir
func sanitizeFilename(filename string) string {
	name := path.Base(filename)
	// path.Base boş girdi için "." döndürür
	if name == "" || name == "." || name == ".." || name == "/" {
		return "file"
	}
	name = strings.ReplaceAll(name, " ", "-")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
