package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	c := newTestContainer(t)
	r := gin.New()
	r.POST("/api/auth/login", HandleAuthFunc(c, "login"))
	return r
}

func TestLoginSuccess(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@hmzsolutions.com",
		"password": "Admin@123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("durum kodu 200 beklenirken %d alındı: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success true beklenirken %v alındı", body["success"])
	}
	if token, _ := body["token"].(string); token == "" {
		t.Error("token boş dönmemeli")
	}

	admin, ok := body["admin"].(map[string]interface{})
	if !ok {
		t.Fatalf("admin nesnesi bekleniyordu: %v", body)
	}
	if admin["email"] != "admin@hmzsolutions.com" {
		t.Errorf("beklenmeyen admin e-postası: %v", admin["email"])
	}
	if admin["role"] != "admin" {
		t.Errorf("beklenmeyen rol: %v", admin["role"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@hmzsolutions.com",
		"password": "yanlis-sifre",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("durum kodu 401 beklenirken %d alındı", w.Code)
	}

	body := decodeBody(t, w)
	if _, hasToken := body["token"]; hasToken {
		t.Error("başarısız girişte token dönmemeli")
	}
	if body["error"] != "Geçersiz e-posta veya şifre" {
		t.Errorf("beklenmeyen hata mesajı: %v", body["error"])
	}
}

func TestLoginWrongEmail(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "baskasi@example.com",
		"password": "Admin@123",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("durum kodu 401 beklenirken %d alındı", w.Code)
	}
}

func TestLoginNotConfigured(t *testing.T) {
	c := newTestContainer(t)

	// Admin bilgileri tanımsız bir yapılandırmayla servis değiştirilir
	cfg := testConfig()
	cfg.AdminEmail = ""
	c.SetService("jwt", services.NewJWTService(cfg))

	r := gin.New()
	r.POST("/api/auth/login", HandleAuthFunc(c, "login"))

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@hmzsolutions.com",
		"password": "Admin@123",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("durum kodu 500 beklenirken %d alındı", w.Code)
	}

	// Hangi değerin eksik olduğu yanıtta görünmemeli
	body := decodeBody(t, w)
	if body["error"] != "Sunucu hatası oluştu. Lütfen daha sonra tekrar deneyin" {
		t.Errorf("beklenmeyen hata mesajı: %v", body["error"])
	}
}

func TestLoginMissingBody(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "admin@hmzsolutions.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("durum kodu 400 beklenirken %d alındı", w.Code)
	}
}
