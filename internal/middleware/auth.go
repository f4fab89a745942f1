package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	appConfig "github.com/teamtracker/teamtracker/internal/config"
)

const identityKey = "identity"

// Identity is the authenticated caller as asserted by the identity provider.
type Identity struct {
	UserID string
	Email  string
}

// Claims are the access token claims issued by the identity provider.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

var (
	errMissingToken = errors.New("missing bearer token")
	errNoSubject    = errors.New("token has no subject")
)

// Auth returns a middleware that verifies the bearer token and stores the
// caller's Identity on the context. Requests without a valid token are
// rejected with 401.
func Auth(cfg appConfig.AuthConfig, logger *zap.SugaredLogger) gin.HandlerFunc {
	secret := []byte(cfg.JWTSecret)

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.JWTAudience != "" {
		opts = append(opts, jwt.WithAudience(cfg.JWTAudience))
	}
	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) {
		identity, err := authenticate(c.GetHeader("Authorization"), parser, secret)
		if err != nil {
			logger.Debugw("authentication failed", "path", c.Request.URL.Path, "error", err)
			abortWithError(c, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

func authenticate(header string, parser *jwt.Parser, secret []byte) (Identity, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return Identity{}, errMissingToken
	}

	claims := &Claims{}
	_, err := parser.ParseWithClaims(strings.TrimSpace(token), claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return Identity{}, err
	}

	if claims.Subject == "" {
		return Identity{}, errNoSubject
	}

	return Identity{UserID: claims.Subject, Email: claims.Email}, nil
}

// SetIdentity stores identity on the request context.
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// IdentityFrom returns the caller stored by Auth.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

// UserID returns the caller's user id, or "" when unauthenticated.
func UserID(c *gin.Context) string {
	identity, _ := IdentityFrom(c)
	return identity.UserID
}
