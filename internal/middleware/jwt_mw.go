package middleware

import (
	"errors"
	"net/http"
	"strings"

	"school_manager/internal/utils"

	"github.com/gin-gonic/gin"
)

const AuthClaimsKey = "authClaims"

// JWTAuthMiddleware authenticates the bearer token and stores its claims
// in the context. Expired tokens get 401, other bad tokens 400.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, tokenString, found := strings.Cut(authHeader, " ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid token"})
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by JWTAuthMiddleware.
func ClaimsFromContext(c *gin.Context) (*utils.JWTClaims, bool) {
	v, ok := c.Get(AuthClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.JWTClaims)
	return claims, ok
}

// OptionalJWTAuth stores claims when a valid bearer token is present and
// lets the request through untouched otherwise.
func OptionalJWTAuth(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, tokenString, found := strings.Cut(c.GetHeader("Authorization"), " ")
		if found && strings.EqualFold(scheme, "bearer") {
			if claims, err := jwtUtil.ValidateToken(strings.TrimSpace(tokenString)); err == nil {
				c.Set(AuthClaimsKey, claims)
			}
		}
		c.Next()
	}
}
