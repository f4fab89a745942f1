package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appConfig "github.com/teamtracker/teamtracker/internal/config"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() Claims {
	return Claims{
		Email: "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func setupAuthRouter(cfg appConfig.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(cfg, zap.NewNop().Sugar()))
	r.GET("/me", func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID, "email": identity.Email})
	})
	return r
}

func TestAuth(t *testing.T) {
	cfg := appConfig.AuthConfig{JWTSecret: testSecret, JWTAudience: "authenticated"}

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noSubject := validClaims()
	noSubject.Subject = ""

	wrongAudience := validClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"anon"}

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "valid token",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()),
			wantStatus: http.StatusOK,
		},
		{
			name:       "lower case scheme",
			header:     "bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()),
			wantStatus: http.StatusOK,
		},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims()),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "other algorithm",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims()),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no expiry",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no subject",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong audience",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), wrongAudience),
			wantStatus: http.StatusUnauthorized,
		},
	}

	router := setupAuthRouter(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				var body map[string]map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "UNAUTHENTICATED", body["error"]["code"])
				return
			}
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "user-1", body["user_id"])
			assert.Equal(t, "ada@example.com", body["email"])
		})
	}
}

func TestAuth_NoAudienceCheck(t *testing.T) {
	router := setupAuthRouter(appConfig.AuthConfig{JWTSecret: testSecret})
	claims := validClaims()
	claims.Audience = nil

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, UserID(c))

	SetIdentity(c, Identity{UserID: "u1", Email: "u1@example.com"})
	assert.Equal(t, "u1", UserID(c))
}
