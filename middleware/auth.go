// File: /middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"teamsync-api/models"
	"teamsync-api/services"
	"teamsync-api/utils"
)

const sessionKey = "session"

// TokenParser is the part of the token service the middleware needs.
type TokenParser interface {
	Parse(tokenString string) (*services.Session, error)
}

// AuthMiddleware requires a valid bearer token and stores the session on
// the context.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Header("WWW-Authenticate", "Bearer")
			utils.SendError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		session, err := tokens.Parse(token)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			utils.SendError(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// OptionalAuth stores a session when a valid token is present and lets
// anonymous requests through.
func OptionalAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if session, err := tokens.Parse(token); err == nil {
				c.Set(sessionKey, session)
			}
		}
		c.Next()
	}
}

// RequireTipo rejects callers of other account types before the handler
// runs. It must follow AuthMiddleware.
func RequireTipo(tipos ...models.UserTipo) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			utils.SendError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !session.Is(tipos...) {
			utils.SendError(c, http.StatusForbidden, "Not enough permissions")
			return
		}
		c.Next()
	}
}

func SessionFrom(c *gin.Context) (*services.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*services.Session)
	return session, ok && session != nil
}

func SetSession(c *gin.Context, session *services.Session) {
	c.Set(sessionKey, session)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
