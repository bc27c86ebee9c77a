package middleware

import (
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie carries the JWT for browser-style clients.
	SessionCookie = "session"
	// UserIDKey is where the authenticated user ID lands in the gin context.
	UserIDKey = "userID"

	loginPath = "/auth/login/"
)

// AuthRequired guards protected routes. An anonymous or invalid request is
// redirected to the login page with the original path preserved as the
// return target, matching conventional server-rendered auth flows.
func AuthRequired(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticate(c, jwtKey)
		if !ok {
			c.Redirect(http.StatusFound, loginPath+"?next="+c.Request.URL.Path)
			c.Abort()
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// AuthOptional resolves the requester identity when a valid token is present
// but never blocks. Public pages use it to personalize (e.g. the follow flag
// on a profile).
func AuthOptional(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := authenticate(c, jwtKey); ok {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtKey []byte) (string, bool) {
	raw := tokenFromRequest(c)
	if raw == "" {
		return "", false
	}

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtKey, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
