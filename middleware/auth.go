package middleware

import (
	"net/http"
	"strings"

	"nowme/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware verifies the member's access token and puts the buyer id
// on the context. Token issuance and sessions belong to the auth provider;
// this service only checks the signature.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		buyerID, err := utils.SubjectFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token subject"})
			return
		}

		c.Set("buyerID", buyerID)
		c.Next()
	}
}
