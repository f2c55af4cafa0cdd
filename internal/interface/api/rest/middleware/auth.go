package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"userdocs-api/internal/application/ports"
	domain "userdocs-api/internal/domain/user"
	"userdocs-api/internal/infrastructure/jwt"
)

const CtxUser = "currentUser"

// AuthMiddleware resolves the bearer token into a live user row. A valid
// signature over a subject that no longer exists is still a 401.
func AuthMiddleware(jwtService *jwt.Service, userService ports.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": msg},
			)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		u, err := userService.FindUserByID(c.Request.Context(), domain.ID(userID))
		if err != nil || u == nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "could not validate credentials"},
			)
			return
		}

		c.Set(CtxUser, u)

		c.Next()
	}
}

// CurrentUser pulls the authenticated user the middleware stored.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}
