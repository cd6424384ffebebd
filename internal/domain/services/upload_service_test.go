package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"logo.png", "logo.png"},
		{"şirket logosu.png", "-irket-logosu.png"},
		{"../../etc/passwd", "passwd"},
		{"a b c.jpg", "a-b-c.jpg"},
		{"rapor_2024-final.pdf", "rapor_2024-final.pdf"},
		{"", "file"},
		{".", "file"},
		{"..", "file"},
		{"/", "file"},
		{"uploads/", "uploads"},
	}

	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, beklenen %q", tc.in, got, tc.want)
		}
	}
}

func TestPublicURL(t *testing.T) {
	key := "uploads/abc-logo.png"

	cases := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{
			name: "özel public URL önceliklidir",
			cfg: &config.Config{
				S3Bucket:    "hmz-uploads",
				S3PublicURL: "https://cdn.hmzsolutions.com/",
				S3Endpoint:  "http://localhost:9000",
			},
			want: "https://cdn.hmzsolutions.com/uploads/abc-logo.png",
		},
		{
			name: "endpoint varsa path-style URL",
			cfg: &config.Config{
				S3Bucket:   "hmz-uploads",
				S3Endpoint: "http://localhost:9000",
			},
			want: "http://localhost:9000/hmz-uploads/uploads/abc-logo.png",
		},
		{
			name: "varsayılan AWS adresi",
			cfg: &config.Config{
				S3Bucket: "hmz-uploads",
				S3Region: "eu-central-1",
			},
			want: "https://hmz-uploads.s3.eu-central-1.amazonaws.com/uploads/abc-logo.png",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &UploadService{Config: tc.cfg}
			if got := svc.publicURL(key); got != tc.want {
				t.Errorf("publicURL = %q, beklenen %q", got, tc.want)
			}
		})
	}
}

func TestUploadWithoutBucket(t *testing.T) {
	svc := NewUploadService(&config.Config{})

	_, err := svc.Upload(context.Background(), "logo.png", "image/png", strings.NewReader("veri"), 4)
	if !errors.Is(err, ErrStorageNotConfigured) {
		t.Errorf("ErrStorageNotConfigured beklenirken %v alındı", err)
	}
}
