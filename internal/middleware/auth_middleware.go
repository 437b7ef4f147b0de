package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopperks/internal/utils"
)

// AuthRequired middleware validates the JWT bearer token and sets user context
func AuthRequired(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, secretKey)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_type", claims.UserType)
		c.Set("phone", claims.Phone)

		c.Next()
	}
}

// ShopRequired middleware ensures the caller is a shop account
func ShopRequired() gin.HandlerFunc {
	return requireUserType(utils.UserTypeShop, "Shop access required")
}

// CustomerRequired middleware ensures the caller is a customer account
func CustomerRequired() gin.HandlerFunc {
	return requireUserType(utils.UserTypeCustomer, "Customer access required")
}

func requireUserType(required, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("user_type")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User type not found"})
			c.Abort()
			return
		}

		userTypeStr, ok := userType.(string)
		if !ok || userTypeStr != required {
			c.JSON(http.StatusForbidden, gin.H{"error": message})
			c.Abort()
			return
		}

		c.Next()
	}
}
