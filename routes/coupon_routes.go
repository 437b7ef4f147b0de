package routes

import (
	"github.com/gin-gonic/gin"

	"shopperks/internal/handlers"
)

// SetupCouponRoutes sets up routes for coupon sharing and claiming
func SetupCouponRoutes(r *gin.RouterGroup, couponHandler *handlers.CouponHandler, auth gin.HandlerFunc) {
	// Claiming is public: the claimer follows a shared link and may not
	// have an account yet.
	r.POST("/coupons/claim/:code", couponHandler.ClaimCoupon)

	coupons := r.Group("/coupons")
	coupons.Use(auth)
	{
		coupons.POST("/", couponHandler.IssueCoupon)
		coupons.GET("/customers/:customer_id", couponHandler.GetCustomerCoupons)
	}
}
