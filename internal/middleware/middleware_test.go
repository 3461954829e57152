package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rescue-site-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/ai/status", JWTAuth(testSecret, zap.NewNop()), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func doAuth(r *gin.Engine, header string) (*httptest.ResponseRecorder, models.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/ai/status", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body models.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestJWTAuth(t *testing.T) {
	r := newAuthRouter()

	valid, err := IssueToken(testSecret, 7, RoleOperator, time.Hour)
	require.NoError(t, err)
	expired, err := IssueToken(testSecret, 7, RoleOperator, -time.Hour)
	require.NoError(t, err)
	wrongRole, err := IssueToken(testSecret, 7, "viewer", time.Hour)
	require.NoError(t, err)
	wrongSecret, err := IssueToken("other", 7, RoleAdmin, time.Hour)
	require.NoError(t, err)

	// Токен с алгоритмом none не должен приниматься
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7, Role: RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"missing header", "", http.StatusUnauthorized, "Unauthorized: Missing token"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "Unauthorized: Malformed token header"},
		{"malformed token", "Bearer not-a-jwt", http.StatusUnauthorized, "Unauthorized: Malformed token"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Unauthorized: Token expired"},
		{"wrong secret", "Bearer " + wrongSecret, http.StatusUnauthorized, "Unauthorized: Invalid token"},
		{"alg none", "Bearer " + none, http.StatusUnauthorized, "Unauthorized: Invalid token"},
		{"wrong role", "Bearer " + wrongRole, http.StatusForbidden, "Forbidden: Insufficient permissions"},
		{"valid", "Bearer " + valid, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doAuth(r, tt.header)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.False(t, body.Success)
				assert.Equal(t, tt.wantError, body.Error)
			} else {
				assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
			}
		})
	}
}

func TestParseToken_RoundTrip(t *testing.T) {
	token, err := IssueToken(testSecret, 99, RoleAdmin, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(99), claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "99", claims.Subject)
}

func TestZapLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(ZapLoggingMiddleware(zap.New(core)))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve := func(path, requestID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if requestID != "" {
			req.Header.Set(RequestIDHeader, requestID)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	serve("/health", "")
	assert.Equal(t, 0, logs.Len(), "health checks are not logged")

	w := serve("/ok?x=1", "req-123")
	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	w = serve("/ok", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	serve("/missing", "")
	serve("/boom", "")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok?x=1", entries[0].ContextMap()["path"])
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}
