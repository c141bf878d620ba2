package middleware

import (
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/integration/entrypoint/dto"
)

// Login is the only throttled route. The backend has one operator account and
// one admin account, so anything beyond a handful of attempts per window from
// a single address is a guessing attack, not a typo streak.
const (
	defaultMaxAttempts    = 5
	defaultWindowDuration = 1 * time.Minute
)

// loginWindow tracks attempts from one client address in the current window.
type loginWindow struct {
	attempts    int
	windowStart time.Time
}

// RateLimiter throttles login attempts per client IP over a fixed window.
type RateLimiter struct {
	mu             sync.Mutex
	windows        map[string]*loginWindow
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a limiter with the default login throttle settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a limiter with custom settings.
func NewRateLimiterWithConfig(maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		windows:        make(map[string]*loginWindow),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware rejects over-limit requests with 429 and a Retry-After header.
// Disabled when ENV=test or E2E_MODE=true so suites can log in repeatedly.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if allowed, retryAfter := rl.allow(clientIP); !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many login attempts. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow records an attempt for the key and reports whether it is within the
// window limit. When rejected, it also reports how long until the window turns.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	win, exists := rl.windows[key]
	if !exists || now.Sub(win.windowStart) >= rl.windowDuration {
		rl.windows[key] = &loginWindow{attempts: 1, windowStart: now}
		return true, 0
	}

	if win.attempts < rl.maxAttempts {
		win.attempts++
		return true, 0
	}

	return false, win.windowStart.Add(rl.windowDuration).Sub(now)
}

// Reset clears all tracked windows.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*loginWindow)
}

// Cleanup drops windows that have already turned, bounding memory when many
// distinct addresses probe the login route.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, win := range rl.windows {
		if now.Sub(win.windowStart) >= rl.windowDuration {
			delete(rl.windows, key)
		}
	}
}
