package httpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/classtrackhq/classtrack/pkg/slogx"
)

// RateLimitConfig defines a token-bucket profile.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Rate limit profiles per endpoint sensitivity. Overridable via
// RATELIMIT_{STRICT,MODERATE,LENIENT}_{REQUESTS,WINDOW_SEC,BURST} env vars,
// which the e2e suite uses to avoid tripping limits.
var (
	// StrictLimit guards registration, login, and password reset endpoints.
	StrictLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// ModerateLimit for authenticated write operations.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20}

	// LenientLimit for reads and health checks.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}
)

func init() {
	StrictLimit = parseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = parseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = parseRateLimitFromEnv("LENIENT", LenientLimit)
}

func parseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	cfg := def

	if val := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.RequestsPerWindow = n
		}
	}
	if val := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Window = time.Duration(n) * time.Second
		}
	}
	if val := os.Getenv("RATELIMIT_" + prefix + "_BURST"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Burst = n
		}
	}

	return cfg
}

// KeyExtractor derives the bucket key for a request (IP, account id, ...).
type KeyExtractor func(*http.Request) string

// IPKey extracts the client IP, honouring X-Forwarded-For and X-Real-IP.
func IPKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// AccountKey extracts the authenticated account id, empty if anonymous.
func AccountKey(r *http.Request) string {
	id, _ := AccountIDFromContext(r.Context())
	return id
}

// FormFieldKey extracts a request field (e.g. the login email) as the key.
// Supports both form-encoded and JSON bodies; a JSON body is restored so the
// handler can still read it.
func FormFieldKey(field string) KeyExtractor {
	return func(r *http.Request) string {
		if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
			return jsonBodyField(r, field)
		}
		if err := r.ParseForm(); err != nil {
			return ""
		}
		return r.FormValue(field)
	}
}

func jsonBodyField(r *http.Request, field string) string {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return ""
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	val, _ := fields[field].(string)
	return val
}

// CompositeKey joins several extractors, skipping empty parts.
func CompositeKey(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		var parts []string
		for _, ex := range extractors {
			if k := ex(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, sep)
	}
}

// bucketSet manages one rate.Limiter per key with periodic pruning of idle
// buckets to keep memory bounded.
type bucketSet struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu        sync.Mutex
	lastPrune time.Time
}

func (b *bucketSet) get(key string) *rate.Limiter {
	if l, ok := b.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}

	l, _ := b.limiters.LoadOrStore(key, rate.NewLimiter(b.rate, b.burst))
	b.maybePrune()
	return l.(*rate.Limiter)
}

func (b *bucketSet) maybePrune() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if time.Since(b.lastPrune) < 5*time.Minute {
		return
	}
	b.lastPrune = time.Now()

	// A full bucket means the key has been idle for at least one window.
	b.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(b.burst) {
			b.limiters.Delete(key)
		}
		return true
	})
}

// RateLimit builds a middleware applying cfg per key derived by extract.
func RateLimit(cfg RateLimitConfig, extract KeyExtractor) Middleware {
	buckets := &bucketSet{
		rate:      rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:     cfg.Burst,
		lastPrune: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := extract(r)
			if key == "" {
				log.Warn("rate limit: no key extracted, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			limiter := buckets.get(key)
			if !limiter.Allow() {
				res := limiter.Reserve()
				delay := res.Delay()
				res.Cancel()

				retryAfter := max(int(delay.Seconds()), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", cfg.RequestsPerWindow))

				log.Warn("rate limit exceeded", "key", key, "endpoint", r.URL.Path)
				WriteError(w, http.StatusTooManyRequests,
					"rate_limit_exceeded", "Too many requests. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits by client IP only.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimit(cfg, IPKey)
}

// RateLimitByAccount limits by authenticated account, falling back to IP.
func RateLimitByAccount(cfg RateLimitConfig) Middleware {
	return RateLimit(cfg, CompositeKey(":", AccountKey, IPKey))
}

// RateLimitByIPAndFormField limits by IP plus a form field, e.g. the login
// email, so one address cannot spray attempts across many accounts unchecked.
func RateLimitByIPAndFormField(cfg RateLimitConfig, field string) Middleware {
	return RateLimit(cfg, CompositeKey(":", IPKey, FormFieldKey(field)))
}
