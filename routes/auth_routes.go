package routes

import (
	"github.com/gin-gonic/gin"

	"shopperks/internal/handlers"
	"shopperks/internal/middleware"
)

// SetupAuthRoutes sets up account and token routes
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, auth gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/shops/register", authHandler.RegisterShop)
		authGroup.POST("/shops/login", authHandler.LoginShop)
		authGroup.POST("/customers/token", authHandler.CustomerToken)
	}

	shops := r.Group("/shops")
	shops.Use(auth, middleware.ShopRequired())
	{
		shops.GET("/:id", authHandler.GetShop)
	}
}
