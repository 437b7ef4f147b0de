package routes

import (
	"github.com/gin-gonic/gin"

	"shopperks/internal/handlers"
	"shopperks/internal/middleware"
)

// SetupTransactionRoutes sets up routes for the transaction lifecycle
func SetupTransactionRoutes(r *gin.RouterGroup, transactionHandler *handlers.TransactionHandler, auth gin.HandlerFunc) {
	transactions := r.Group("/transactions")
	transactions.Use(auth)
	{
		transactions.POST("/", transactionHandler.CreateTransaction)
		transactions.GET("/:id", transactionHandler.GetTransaction)

		// Previews never write anything; they exist so clients can show
		// the outcome before submitting.
		transactions.POST("/preview/points", transactionHandler.PreviewPoints)
		transactions.POST("/preview/redemption", transactionHandler.PreviewRedemption)

		transactions.GET("/customers/:customer_id", transactionHandler.GetCustomerTransactions)
	}

	// Review operations require a shop account.
	review := r.Group("/transactions")
	review.Use(auth, middleware.ShopRequired())
	{
		review.GET("/pending", transactionHandler.GetPendingTransactions)
		review.PUT("/:id/status", transactionHandler.ReviewTransaction)
		review.GET("/campaigns/:campaign_id", transactionHandler.GetCampaignTransactions)
	}
}
