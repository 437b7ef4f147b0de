package handlers

import (
	"github.com/gin-gonic/gin"

	"shopperks/internal/services"
	"shopperks/internal/utils"
	"shopperks/internal/validators"
)

type AuthHandler struct {
	shopService     services.ShopService
	customerService services.CustomerService
	jwtSecret       string
}

func NewAuthHandler(shopService services.ShopService, customerService services.CustomerService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		shopService:     shopService,
		customerService: customerService,
		jwtSecret:       jwtSecret,
	}
}

// RegisterShop creates a shop account
func (h *AuthHandler) RegisterShop(c *gin.Context) {
	var request validators.ShopRegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateShopRegister(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationErrorDetails(errs))
		return
	}

	shop, err := h.shopService.Register(c.Request.Context(), &services.RegisterShopRequest{
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Password: request.Password,
		Address:  request.Address,
	})
	if err != nil {
		serviceErrorResponse(c, err, "SHOP_REGISTER_FAILED", "Failed to register shop")
		return
	}

	utils.CreatedResponse(c, "Shop registered successfully", shop)
}

// LoginShop authenticates a shop and issues a token pair
func (h *AuthHandler) LoginShop(c *gin.Context) {
	var request validators.ShopLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	shop, err := h.shopService.Authenticate(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		utils.UnauthorizedResponse(c)
		return
	}

	tokens, err := utils.GenerateTokenPair(shop.ID, utils.UserTypeShop, shop.Phone, h.jwtSecret)
	if err != nil {
		serviceErrorResponse(c, err, "TOKEN_ISSUE_FAILED", "Failed to issue tokens")
		return
	}

	utils.SuccessResponse(c, "Login successful", gin.H{
		"shop":   shop,
		"tokens": tokens,
	})
}

// CustomerToken issues a token pair for a customer identified by phone.
// TODO: gate this behind SMS OTP verification once the OTP flow lands.
func (h *AuthHandler) CustomerToken(c *gin.Context) {
	var request struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	customer, err := h.customerService.GetByPhone(c.Request.Context(), request.Phone)
	if err != nil {
		utils.UnauthorizedResponse(c)
		return
	}

	tokens, err := utils.GenerateTokenPair(customer.ID, utils.UserTypeCustomer, customer.Phone, h.jwtSecret)
	if err != nil {
		serviceErrorResponse(c, err, "TOKEN_ISSUE_FAILED", "Failed to issue tokens")
		return
	}

	utils.SuccessResponse(c, "Token issued successfully", gin.H{
		"customer": customer,
		"tokens":   tokens,
	})
}

// GetShop retrieves shop details
func (h *AuthHandler) GetShop(c *gin.Context) {
	shopID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	shop, err := h.shopService.GetShop(c.Request.Context(), shopID)
	if err != nil {
		serviceErrorResponse(c, err, "SHOP_FETCH_FAILED", "Failed to get shop")
		return
	}

	utils.SuccessResponse(c, "Shop retrieved successfully", shop)
}
