package routes

import (
	"github.com/gin-gonic/gin"

	"shopperks/internal/handlers"
	"shopperks/internal/middleware"
)

// SetupCustomerRoutes sets up routes for customer enrollment and lookups
func SetupCustomerRoutes(r *gin.RouterGroup, customerHandler *handlers.CustomerHandler, auth gin.HandlerFunc) {
	// Registration is public: it is the enrollment entry point.
	r.POST("/customers", customerHandler.Register)
	r.GET("/customers/referral/:code", customerHandler.GetByReferralCode)

	customers := r.Group("/customers")
	customers.Use(auth)
	{
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.GET("/:id/balance", customerHandler.GetBalance)
	}

	shopOnly := r.Group("/customers")
	shopOnly.Use(auth, middleware.ShopRequired())
	{
		shopOnly.GET("/campaigns/:campaign_id", customerHandler.GetCampaignCustomers)
	}
}
