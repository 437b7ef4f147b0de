package handlers

import (
	"github.com/gin-gonic/gin"

	"shopperks/internal/services"
	"shopperks/internal/utils"
	"shopperks/internal/validators"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// Register creates a new customer with a fresh referral code
func (h *CustomerHandler) Register(c *gin.Context) {
	var request validators.CustomerRegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateCustomerRegister(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationErrorDetails(errs))
		return
	}

	customer, err := h.customerService.Register(c.Request.Context(), &services.RegisterCustomerRequest{
		CampaignID: request.CampaignID,
		Name:       request.Name,
		Phone:      request.Phone,
		Email:      request.Email,
	})
	if err != nil {
		serviceErrorResponse(c, err, "CUSTOMER_REGISTER_FAILED", "Failed to register customer")
		return
	}

	utils.CreatedResponse(c, "Customer registered successfully", customer)
}

// GetCustomer retrieves customer details
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		serviceErrorResponse(c, err, "CUSTOMER_FETCH_FAILED", "Failed to get customer")
		return
	}

	utils.SuccessResponse(c, "Customer retrieved successfully", customer)
}

// GetByReferralCode looks a customer up by their referral code
func (h *CustomerHandler) GetByReferralCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		utils.BadRequestResponse(c, "Referral code required")
		return
	}

	customer, err := h.customerService.GetByReferralCode(c.Request.Context(), code)
	if err != nil {
		serviceErrorResponse(c, err, "CUSTOMER_FETCH_FAILED", "Failed to get customer")
		return
	}

	utils.SuccessResponse(c, "Customer retrieved successfully", customer)
}

// GetBalance returns the customer's spendable point balance
func (h *CustomerHandler) GetBalance(c *gin.Context) {
	customerID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	points, err := h.customerService.GetAvailablePoints(c.Request.Context(), customerID)
	if err != nil {
		serviceErrorResponse(c, err, "BALANCE_FETCH_FAILED", "Failed to get balance")
		return
	}

	utils.SuccessResponse(c, "Balance retrieved successfully", gin.H{"available_points": points})
}

// GetCampaignCustomers lists customers enrolled in a campaign
func (h *CustomerHandler) GetCampaignCustomers(c *gin.Context) {
	campaignID, ok := objectIDParam(c, "campaign_id")
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	customers, total, err := h.customerService.GetCampaignCustomers(c.Request.Context(), campaignID, params)
	if err != nil {
		serviceErrorResponse(c, err, "CAMPAIGN_CUSTOMERS_FAILED", "Failed to get campaign customers")
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	response := map[string]interface{}{
		"customers": customers,
	}

	utils.SuccessResponseWithMeta(c, "Customers retrieved successfully", response, meta)
}
