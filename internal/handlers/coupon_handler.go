package handlers

import (
	"github.com/gin-gonic/gin"

	"shopperks/internal/services"
	"shopperks/internal/utils"
	"shopperks/internal/validators"
)

type CouponHandler struct {
	couponService services.CouponService
}

func NewCouponHandler(couponService services.CouponService) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
	}
}

// IssueCoupon creates a shareable coupon for a customer
func (h *CouponHandler) IssueCoupon(c *gin.Context) {
	var request validators.CouponIssueRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateCouponIssue(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationErrorDetails(errs))
		return
	}

	coupon, err := h.couponService.IssueCoupon(c.Request.Context(), &services.IssueCouponRequest{
		CampaignID:  request.CampaignID,
		CustomerID:  request.CustomerID,
		DiscountPct: request.DiscountPct,
		UsageLimit:  request.UsageLimit,
	})
	if err != nil {
		serviceErrorResponse(c, err, "COUPON_ISSUE_FAILED", "Failed to issue coupon")
		return
	}

	utils.CreatedResponse(c, "Coupon issued successfully", coupon)
}

// ClaimCoupon redeems a shared coupon and credits the referrer
func (h *CouponHandler) ClaimCoupon(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		utils.BadRequestResponse(c, "Coupon code required")
		return
	}

	result, err := h.couponService.ClaimCoupon(c.Request.Context(), code)
	if err != nil {
		serviceErrorResponse(c, err, "COUPON_CLAIM_FAILED", "Failed to claim coupon")
		return
	}

	utils.SuccessResponse(c, "Coupon claimed successfully", result)
}

// GetCustomerCoupons lists coupons issued to a customer
func (h *CouponHandler) GetCustomerCoupons(c *gin.Context) {
	customerID, ok := objectIDParam(c, "customer_id")
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	coupons, total, err := h.couponService.GetCustomerCoupons(c.Request.Context(), customerID, params)
	if err != nil {
		serviceErrorResponse(c, err, "COUPON_LIST_FAILED", "Failed to get coupons")
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	response := map[string]interface{}{
		"coupons": coupons,
	}

	utils.SuccessResponseWithMeta(c, "Coupons retrieved successfully", response, meta)
}
