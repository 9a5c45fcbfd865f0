package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"steelcatalog/internal/logging"
	"steelcatalog/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthorizer struct {
	users map[string]service.AdminIdentity
	err   error
}

func (s stubAuthorizer) AuthorizeAdmin(_ context.Context, uid string) (service.AdminIdentity, error) {
	if s.err != nil {
		return service.AdminIdentity{}, s.err
	}
	u, ok := s.users[uid]
	if !ok {
		return service.AdminIdentity{}, fmt.Errorf("%w: User not found", service.ErrUnauthorized)
	}
	if !u.IsActive {
		return service.AdminIdentity{}, fmt.Errorf("%w: Account is inactive", service.ErrForbidden)
	}
	if u.Role != "admin" {
		return service.AdminIdentity{}, fmt.Errorf("%w: Admin access required", service.ErrForbidden)
	}
	return u, nil
}

type stubVerifier map[string]string

func (v stubVerifier) VerifyIDToken(_ context.Context, token string) (string, error) {
	uid, ok := v[token]
	if !ok {
		return "", errors.New("token rejected")
	}
	return uid, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func gatedRouter(auth AdminAuthorizer, verifier stubVerifier) *gin.Engine {
	r := gin.New()
	var gate gin.HandlerFunc
	if verifier == nil {
		gate = RequireAdmin(auth, nil)
	} else {
		gate = RequireAdmin(auth, verifier)
	}
	r.GET("/admin/ping", gate, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor": ActorUID(c)})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	auth := stubAuthorizer{users: map[string]service.AdminIdentity{
		"admin-1":    {FirebaseUID: "admin-1", Role: "admin", IsActive: true},
		"client-1":   {FirebaseUID: "client-1", Role: "client", IsActive: true},
		"disabled-1": {FirebaseUID: "disabled-1", Role: "admin", IsActive: false},
	}}
	router := gatedRouter(auth, nil)

	tests := []struct {
		name    string
		uid     string
		status  int
		message string
	}{
		{"missing header", "", http.StatusUnauthorized, "Unauthorized - No Firebase UID provided"},
		{"unknown user", "ghost", http.StatusUnauthorized, "Unauthorized - User not found"},
		{"inactive admin", "disabled-1", http.StatusForbidden, "Forbidden - Account is inactive"},
		{"client role", "client-1", http.StatusForbidden, "Forbidden - Admin access required"},
		{"active admin", "admin-1", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.uid != "" {
				req.Header.Set(FirebaseUIDHeader, tt.uid)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.uid, body["actor"])
			} else {
				assert.Equal(t, tt.message, body["error"])
			}
		})
	}
}

func TestRequireAdminStoreFailure(t *testing.T) {
	router := gatedRouter(stubAuthorizer{err: errors.New("connection reset")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set(FirebaseUIDHeader, "admin-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAdminWithTokenVerification(t *testing.T) {
	auth := stubAuthorizer{users: map[string]service.AdminIdentity{
		"admin-1": {FirebaseUID: "admin-1", Role: "admin", IsActive: true},
	}}
	router := gatedRouter(auth, stubVerifier{"good-token": "admin-1", "other-token": "someone-else"})

	tests := []struct {
		name   string
		auth   string
		status int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"token for another uid", "Bearer other-token", http.StatusUnauthorized},
		{"matching token", "Bearer good-token", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			req.Header.Set(FirebaseUIDHeader, "admin-1")
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

type memCounter struct {
	counts map[string]int64
}

func (m *memCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	m.counts[key]++
	return m.counts[key], nil
}

func TestRateLimiter(t *testing.T) {
	counter := &memCounter{counts: map[string]int64{}}
	r := gin.New()
	r.Use(RateLimiter(counter, 2, time.Minute))
	r.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// a different client has its own window
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	r := gin.New()
	r.Use(RateLimiter(NewRedisCounter(client), 1, time.Minute))
	r.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestLoggerAttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(logging.NewWithWriter(&buf, "info")))
	r.GET("/categories", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"msg":"inside handler"`)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"status":204`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestMetricsCountsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := gin.New()
	r.Use(m.Handler())
	r.GET("/products/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/products/1", "/products/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/products/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
}
