package handlers

import (
	"github.com/gin-gonic/gin"

	"shopperks/internal/models"
	"shopperks/internal/services"
	"shopperks/internal/utils"
	"shopperks/internal/validators"
)

type CampaignHandler struct {
	campaignService services.CampaignService
}

func NewCampaignHandler(campaignService services.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// CreateCampaign creates a new rewards campaign for a shop
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var request validators.CampaignCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateCampaignCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationErrorDetails(errs))
		return
	}

	campaign, err := h.campaignService.CreateCampaign(c.Request.Context(), &services.CreateCampaignRequest{
		ShopID:                   request.ShopID,
		Name:                     request.Name,
		Description:              request.Description,
		PointRules:               toPointRules(request.PointRules),
		PointsRedemptionValue:    request.PointsRedemptionValue,
		PointsRedemptionDiscount: request.PointsRedemptionDiscount,
		MinPurchaseAmount:        request.MinPurchaseAmount,
		ReferralPoints:           request.ReferralPoints,
		ThemeColor:               request.ThemeColor,
		LogoURL:                  request.LogoURL,
	})
	if err != nil {
		serviceErrorResponse(c, err, "CAMPAIGN_CREATE_FAILED", "Failed to create campaign")
		return
	}

	utils.CreatedResponse(c, "Campaign created successfully", campaign)
}

// GetCampaign retrieves campaign details
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaignID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	campaign, err := h.campaignService.GetCampaign(c.Request.Context(), campaignID)
	if err != nil {
		serviceErrorResponse(c, err, "CAMPAIGN_FETCH_FAILED", "Failed to get campaign")
		return
	}

	utils.SuccessResponse(c, "Campaign retrieved successfully", campaign)
}

// UpdateCampaign updates campaign settings
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	campaignID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var request validators.CampaignUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateCampaignUpdate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationErrorDetails(errs))
		return
	}

	updates := map[string]interface{}{}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.PointsRedemptionValue != nil {
		updates["points_redemption_value"] = *request.PointsRedemptionValue
	}
	if request.PointsRedemptionDiscount != nil {
		updates["points_redemption_discount"] = *request.PointsRedemptionDiscount
	}
	if request.MinPurchaseAmount != nil {
		updates["min_purchase_amount"] = *request.MinPurchaseAmount
	}
	if request.ReferralPoints != nil {
		updates["referral_points"] = *request.ReferralPoints
	}
	if request.IsActive != nil {
		updates["is_active"] = *request.IsActive
	}
	if request.ThemeColor != nil {
		updates["theme_color"] = *request.ThemeColor
	}
	if request.LogoURL != nil {
		updates["logo_url"] = *request.LogoURL
	}

	campaign, err := h.campaignService.UpdateCampaign(c.Request.Context(), campaignID, updates)
	if err != nil {
		serviceErrorResponse(c, err, "CAMPAIGN_UPDATE_FAILED", "Failed to update campaign")
		return
	}

	if request.PointRules != nil {
		campaign, err = h.campaignService.UpdatePointRules(c.Request.Context(), campaignID, toPointRules(request.PointRules))
		if err != nil {
			serviceErrorResponse(c, err, "CAMPAIGN_UPDATE_FAILED", "Failed to update point rules")
			return
		}
	}

	utils.SuccessResponse(c, "Campaign updated successfully", campaign)
}

// UpdatePointRules replaces the campaign's earning tiers
func (h *CampaignHandler) UpdatePointRules(c *gin.Context) {
	campaignID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var request struct {
		PointRules []validators.PointRuleRequest `json:"point_rules" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	campaign, err := h.campaignService.UpdatePointRules(c.Request.Context(), campaignID, toPointRules(request.PointRules))
	if err != nil {
		serviceErrorResponse(c, err, "POINT_RULES_UPDATE_FAILED", "Failed to update point rules")
		return
	}

	utils.SuccessResponse(c, "Point rules updated successfully", campaign)
}

// SetActive toggles whether the campaign accepts new transactions
func (h *CampaignHandler) SetActive(c *gin.Context) {
	campaignID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var request struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.campaignService.SetActive(c.Request.Context(), campaignID, *request.IsActive); err != nil {
		serviceErrorResponse(c, err, "CAMPAIGN_ACTIVATION_FAILED", "Failed to change campaign state")
		return
	}

	utils.SuccessResponse(c, "Campaign state updated successfully", nil)
}

// GetShopCampaigns lists a shop's campaigns
func (h *CampaignHandler) GetShopCampaigns(c *gin.Context) {
	shopID, ok := objectIDParam(c, "shop_id")
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	campaigns, total, err := h.campaignService.GetShopCampaigns(c.Request.Context(), shopID, params)
	if err != nil {
		serviceErrorResponse(c, err, "SHOP_CAMPAIGNS_FAILED", "Failed to get shop campaigns")
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	response := map[string]interface{}{
		"campaigns": campaigns,
	}

	utils.SuccessResponseWithMeta(c, "Campaigns retrieved successfully", response, meta)
}

// GetActiveShopCampaigns lists only campaigns currently accepting transactions
func (h *CampaignHandler) GetActiveShopCampaigns(c *gin.Context) {
	shopID, ok := objectIDParam(c, "shop_id")
	if !ok {
		return
	}

	campaigns, err := h.campaignService.GetActiveShopCampaigns(c.Request.Context(), shopID)
	if err != nil {
		serviceErrorResponse(c, err, "SHOP_CAMPAIGNS_FAILED", "Failed to get active campaigns")
		return
	}

	utils.SuccessResponse(c, "Active campaigns retrieved successfully", gin.H{"campaigns": campaigns})
}

func toPointRules(requests []validators.PointRuleRequest) []models.PointRule {
	rules := make([]models.PointRule, 0, len(requests))
	for _, r := range requests {
		rules = append(rules, models.PointRule{
			MinAmount: r.MinAmount,
			MaxAmount: r.MaxAmount,
			Points:    r.Points,
		})
	}
	return rules
}
