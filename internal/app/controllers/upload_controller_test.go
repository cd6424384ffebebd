package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/app/middleware"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services"
)

func newUploadRouter(t *testing.T, fake *fakeUploadService) *gin.Engine {
	t.Helper()

	c := newTestContainer(t)
	c.SetService("upload", fake)

	r := gin.New()
	r.POST("/api/upload", middleware.AuthenticateAdmin(), HandleUploadFunc(c, "upload"))
	return r
}

func doUpload(t *testing.T, r *gin.Engine, path, token, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(http.MethodPost, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadRequiresAuth(t *testing.T) {
	fake := &fakeUploadService{}
	r := newUploadRouter(t, fake)

	w := doUpload(t, r, "/api/upload?filename=logo.png", "", "image/png", "veri")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("durum kodu 401 beklenirken %d alındı", w.Code)
	}
}

func TestUploadRequiresFilename(t *testing.T) {
	fake := &fakeUploadService{}
	r := newUploadRouter(t, fake)

	w := doUpload(t, r, "/api/upload", adminToken(t), "image/png", "veri")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("durum kodu 400 beklenirken %d alındı", w.Code)
	}

	body := decodeBody(t, w)
	if body["error"] != "Dosya adı zorunludur" {
		t.Errorf("beklenmeyen hata mesajı: %v", body["error"])
	}
}

func TestUploadRejectsEmptyBody(t *testing.T) {
	fake := &fakeUploadService{}
	r := newUploadRouter(t, fake)

	w := doUpload(t, r, "/api/upload?filename=logo.png", adminToken(t), "image/png", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("durum kodu 400 beklenirken %d alındı", w.Code)
	}
	if fake.gotName != "" {
		t.Error("boş gövdede servis çağrılmamalı")
	}
}

func TestUploadSuccess(t *testing.T) {
	fake := &fakeUploadService{
		result: &services.UploadResult{
			URL:         "https://cdn.hmzsolutions.com/uploads/abc-logo.png",
			Pathname:    "uploads/abc-logo.png",
			ContentType: "image/png",
			Size:        4,
		},
	}
	r := newUploadRouter(t, fake)

	w := doUpload(t, r, "/api/upload?filename=logo.png", adminToken(t), "image/png", "veri")
	if w.Code != http.StatusOK {
		t.Fatalf("durum kodu 200 beklenirken %d alındı: %s", w.Code, w.Body.String())
	}

	if fake.gotName != "logo.png" || fake.gotType != "image/png" {
		t.Errorf("servise geçen değerler hatalı: ad=%q tip=%q", fake.gotName, fake.gotType)
	}

	body := decodeBody(t, w)
	if body["url"] != fake.result.URL {
		t.Errorf("beklenmeyen url: %v", body["url"])
	}
	if body["pathname"] != fake.result.Pathname {
		t.Errorf("beklenmeyen pathname: %v", body["pathname"])
	}
}

func TestUploadStorageNotConfigured(t *testing.T) {
	fake := &fakeUploadService{uploadErr: services.ErrStorageNotConfigured}
	r := newUploadRouter(t, fake)

	w := doUpload(t, r, "/api/upload?filename=logo.png", adminToken(t), "image/png", "veri")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("durum kodu 500 beklenirken %d alındı", w.Code)
	}
}
