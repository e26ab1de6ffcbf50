package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsnap/skillsnap-server/pkg/helpers"
	"github.com/skillsnap/skillsnap-server/pkg/response"
)

const (
	CtxClaimsKey = "claims"
	CtxUserIDKey = "userID"
)

// Auth validates the Authorization bearer token and injects the full claim
// set into the Gin context. Stateless: a valid signature, issuer, audience,
// and expiry are the whole authorization decision. The 401 body carries no
// detail to avoid leaking why a token was rejected.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}
		c.Set(CtxClaimsKey, claims)
		c.Set(CtxUserIDKey, claims.Subject)
		c.Next()
	}
}

// GetClaims returns the claims a successful Auth pass stored on the context.
func GetClaims(c *gin.Context) (*helpers.Claims, bool) {
	v, ok := c.Get(CtxClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*helpers.Claims)
	return claims, ok
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
