package routes

import (
	"github.com/gin-gonic/gin"

	"shopperks/internal/handlers"
	"shopperks/internal/middleware"
)

// SetupCampaignRoutes sets up routes for campaign management
func SetupCampaignRoutes(r *gin.RouterGroup, campaignHandler *handlers.CampaignHandler, auth gin.HandlerFunc) {
	// Campaign details are public so shared links can render them.
	campaigns := r.Group("/campaigns")
	{
		campaigns.GET("/:id", campaignHandler.GetCampaign)
		campaigns.GET("/shops/:shop_id/active", campaignHandler.GetActiveShopCampaigns)
	}

	// Management routes require a shop account.
	manage := r.Group("/campaigns")
	manage.Use(auth, middleware.ShopRequired())
	{
		manage.POST("/", campaignHandler.CreateCampaign)
		manage.PUT("/:id", campaignHandler.UpdateCampaign)
		manage.PUT("/:id/rules", campaignHandler.UpdatePointRules)
		manage.PUT("/:id/active", campaignHandler.SetActive)
		manage.GET("/shops/:shop_id", campaignHandler.GetShopCampaigns)
	}
}
