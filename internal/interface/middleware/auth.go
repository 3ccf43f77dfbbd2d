package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/devconnector-api/pkg/helpers"
	"github.com/oksasatya/devconnector-api/pkg/response"
)

// CtxUserIDKey is the gin context key the auth gate sets for handlers.
const CtxUserIDKey = "userID"

// TokenHeader is the request header carrying the raw session token. No
// Bearer prefix; the header value is the signed token itself.
const TokenHeader = "x-auth-token"

// Auth verifies the session token and attaches the caller's user id to the
// request context. It is a pure boundary filter: no database access, no side
// effects beyond the context attachment. Token verification does not confirm
// the user still exists.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			response.Msg(c, http.StatusUnauthorized, "no token, authorization denied")
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Msg(c, http.StatusUnauthorized, "token is not valid")
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
