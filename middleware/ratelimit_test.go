package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterWithinLimit(t *testing.T) {
	rl := NewRateLimiter(5, 1*time.Minute)
	for i := 0; i < 5; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiterOverLimit(t *testing.T) {
	rl := NewRateLimiter(2, 1*time.Minute)
	rl.allow("10.0.0.1")
	rl.allow("10.0.0.1")
	if rl.allow("10.0.0.1") {
		t.Fatal("third request should be rate limited")
	}
}

func TestRateLimiterTokenRefill(t *testing.T) {
	// Short window so the bucket refills within the test.
	rl := NewRateLimiter(1, 50*time.Millisecond)
	rl.allow("10.0.0.1")
	if rl.allow("10.0.0.1") {
		t.Fatal("should be rate limited immediately")
	}
	time.Sleep(60 * time.Millisecond)
	if !rl.allow("10.0.0.1") {
		t.Fatal("token should have refilled")
	}
}

func TestRateLimiterPerIPBuckets(t *testing.T) {
	rl := NewRateLimiter(1, 1*time.Minute)
	rl.allow("10.0.0.1")
	if !rl.allow("10.0.0.2") {
		t.Fatal("a different IP should have its own bucket")
	}
}

func TestRateLimiterMiddleware429(t *testing.T) {
	rl := NewRateLimiter(1, 1*time.Minute)

	r := gin.New()
	r.Use(rl.Middleware())
	r.POST("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest("POST", "/login", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest("POST", "/login", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}
}
