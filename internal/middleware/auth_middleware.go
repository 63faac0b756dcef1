package middleware

import (
	"net/http"
	"strings"

	"go-fieldtrack/internal/domain"
	"go-fieldtrack/internal/shared/contextutil"
	"go-fieldtrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
	ContextEmail  = "email"
	ContextName   = "name"
)

// TokenClaims is what the middleware needs out of a verified access token.
type TokenClaims struct {
	UserID string
	Email  string
	Name   string
	Role   domain.Role
}

// TokenParser verifies a bearer token. auth.TokenManager implements it.
type TokenParser interface {
	ParseToken(token string) (TokenClaims, error)
}

// AuthMiddleware authenticates the bearer token and stores the caller in the gin context.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated")
			return
		}

		claims, err := tokens.ParseToken(tokenString)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		if claims.UserID == "" || !claims.Role.Valid() {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextName, claims.Name)

		ctx := contextutil.WithUserID(c.Request.Context(), claims.UserID)
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", claims.UserID))
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()
	}
}

// CallerFrom reads the identity set by AuthMiddleware.
func CallerFrom(c *gin.Context) domain.Caller {
	role, _ := c.Get(ContextRole)
	r, _ := role.(domain.Role)
	return domain.Caller{
		UserID: c.GetString(ContextUserID),
		Role:   r,
	}
}
