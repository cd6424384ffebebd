package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/models"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
)

var (
	// ErrInvalidCredentials e-posta veya şifre eşleşmediğinde döner
	ErrInvalidCredentials = errors.New("geçersiz e-posta veya şifre")
	// ErrAuthNotConfigured admin bilgileri veya imza anahtarı tanımsızken döner
	ErrAuthNotConfigured = errors.New("kimlik doğrulama yapılandırması eksik")
)

// InterfaceJWTService JWT servis arayüzü
type InterfaceJWTService interface {
	GenerateToken(email, role string) (string, error)
	ExtractClaims(tokenString string) (*AdminClaims, error)
	Login(email, password string) (*LoginResult, error)
}

// AdminClaims JWT token içine kodlanan admin kimliği
type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResult başarılı giriş sonucu
type LoginResult struct {
	Token string           `json:"token"`
	Admin models.AdminUser `json:"admin"`
}

// JWTService JWT üretim ve doğrulama servisi
type JWTService struct {
	secretKey string
	issuer    string
	Config    *config.Config
}

// NewJWTService yeni bir JWT servisi oluşturur
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "hmz-solutions",
		Config:    cfg,
	}
}

// GenerateToken verilen kimlik için imzalı token üretir.
// İmza anahtarı tanımsızsa hata döner; bu bir istek hatası değil
// yapılandırma hatasıdır.
func (s *JWTService) GenerateToken(email, role string) (string, error) {
	if s.secretKey == "" {
		return "", ErrAuthNotConfigured
	}

	// Token 24 saat geçerlidir
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &AdminClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ExtractClaims token içindeki admin kimliğini çıkarır. Yapısal, imza veya
// süre hatalarının hiçbiri ayrıştırılmaz; hepsi kimliksiz olarak raporlanır.
func (s *JWTService) ExtractClaims(tokenString string) (*AdminClaims, error) {
	if s.secretKey == "" {
		return nil, ErrAuthNotConfigured
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Login gönderilen e-posta ve şifreyi yapılandırılmış admin bilgileriyle
// karşılaştırır ve eşleşirse token üretir
func (s *JWTService) Login(email, password string) (*LoginResult, error) {
	cfg := s.Config

	if cfg.AdminEmail == "" || (cfg.AdminPassword == "" && cfg.AdminPasswordHash == "") {
		return nil, ErrAuthNotConfigured
	}
	if s.secretKey == "" {
		return nil, ErrAuthNotConfigured
	}

	if !strings.EqualFold(email, cfg.AdminEmail) {
		return nil, ErrInvalidCredentials
	}

	// Hash tanımlıysa bcrypt, değilse sabit zamanlı düz karşılaştırma
	if cfg.AdminPasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
	} else {
		if subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) != 1 {
			return nil, ErrInvalidCredentials
		}
	}

	token, err := s.GenerateToken(cfg.AdminEmail, models.AdminRole)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		Admin: models.AdminUser{
			Email: cfg.AdminEmail,
			Role:  models.AdminRole,
		},
	}, nil
}
