package middleware

import (
	"net/http"
	"strings"

	"LearnHub/pkg/context"
	"LearnHub/pkg/jwt"
	"LearnHub/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth is the single guard in front of every authenticated route. Any
// failure, missing header included, answers the uniform 401 the web
// client expects.
func Auth(secret []byte, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// a logout removes the session record; the token dies with it
		if !sessions.IsAlive(c.Request.Context(), claims.SessionID) {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		name, _ := sessions.GetName(c.Request.Context(), claims.SessionID)

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUserName, name)
		c.Set(context.CtxSessionID, claims.SessionID)

		c.Next()
	}
}
