package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kiwicar-nz/marketplace-api/response"
)

// UserIDKey is the gin context key holding the authenticated subject.
const UserIDKey = "user_id"

func parseBearer(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || token == "" {
		return "", errors.New("invalid Authorization header")
	}
	return ParseToken(token)
}

// ParseToken validates a bearer token and returns its subject.
func ParseToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid or expired token")
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("invalid token claims")
	}
	return sub, nil
}

// RequireAuth aborts with 401 unless a valid bearer token is presented.
func RequireAuth(c *gin.Context) {
	sub, err := parseBearer(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, err.Error())
		c.Abort()
		return
	}
	c.Set(UserIDKey, sub)
	c.Next()
}

// OptionalAuth sets the subject when a valid token is present and passes
// through silently otherwise. Used where anonymous reads are allowed but
// the response is personalized for signed-in callers.
func OptionalAuth(c *gin.Context) {
	if sub, err := parseBearer(c); err == nil {
		c.Set(UserIDKey, sub)
	}
	c.Next()
}

// CallerID returns the authenticated subject, if any.
func CallerID(c *gin.Context) (string, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
