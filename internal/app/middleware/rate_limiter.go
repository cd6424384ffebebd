package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/code"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/response"
)

// Basit token bucket sınırlayıcı
type TokenBucket struct {
	rate       float64    // saniyede eklenen token sayısı
	capacity   int        // kova kapasitesi
	tokens     float64    // mevcut token sayısı
	lastRefill time.Time  // son doldurma zamanı
	mu         sync.Mutex // kilit
}

// NewTokenBucket yeni bir token bucket sınırlayıcı oluşturur
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow bir token almayı dener
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	// Tokenleri doldur
	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// Sınırlayıcı haritaları
var (
	ipLimiters     = make(map[string]*TokenBucket)
	ipLimitersMu   sync.RWMutex
	pathLimiters   = make(map[string]*TokenBucket)
	pathLimitersMu sync.RWMutex
)

// RateLimiterConfig sınırlayıcı yapılandırması
type RateLimiterConfig struct {
	Rate       float64                   // saniyede izin verilen istek sayısı
	Burst      int                       // izin verilen ani istek sayısı
	ExpiryTime time.Duration             // sınırlayıcının yaşam süresi
	LimitType  string                    // "ip", "path", "combined"
	KeyFunc    func(*gin.Context) string // özel anahtar üretici
}

// DefaultRateLimiterConfig varsayılan sınırlayıcı yapılandırması
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       1,
	Burst:      5,
	ExpiryTime: 1 * time.Hour,
	LimitType:  "ip",
	KeyFunc:    nil,
}

// IP başına sınırlayıcı döndürür
func getIPLimiter(ip string, cfg RateLimiterConfig) *TokenBucket {
	ipLimitersMu.RLock()
	limiter, exists := ipLimiters[ip]
	ipLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		ipLimitersMu.Lock()
		ipLimiters[ip] = limiter
		ipLimitersMu.Unlock()

		if cfg.ExpiryTime > 0 {
			go func() {
				time.Sleep(cfg.ExpiryTime)
				ipLimitersMu.Lock()
				delete(ipLimiters, ip)
				ipLimitersMu.Unlock()
			}()
		}
	}

	return limiter
}

// Yol başına sınırlayıcı döndürür
func getPathLimiter(path string, cfg RateLimiterConfig) *TokenBucket {
	pathLimitersMu.RLock()
	limiter, exists := pathLimiters[path]
	pathLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		pathLimitersMu.Lock()
		pathLimiters[path] = limiter
		pathLimitersMu.Unlock()
	}

	return limiter
}

// RateLimiter istek sınırlama middleware'i oluşturur
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	var cfg RateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultRateLimiterConfig
	}

	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}

	return func(c *gin.Context) {
		var limiter *TokenBucket

		switch cfg.LimitType {
		case "ip":
			limiter = getIPLimiter(c.ClientIP(), cfg)
		case "path":
			limiter = getPathLimiter(c.Request.URL.Path, cfg)
		case "combined":
			key := c.ClientIP() + ":" + c.Request.URL.Path
			limiter = getIPLimiter(key, cfg)
		default:
			if cfg.KeyFunc != nil {
				limiter = getIPLimiter(cfg.KeyFunc(c), cfg)
			} else {
				limiter = getIPLimiter(c.ClientIP(), cfg)
			}
		}

		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}

// IPRateLimiter IP başına sınırlama
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "ip",
	})
}

// CombinedRateLimiter IP ve yol kombinasyonuna göre sınırlama
func CombinedRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "combined",
	})
}
