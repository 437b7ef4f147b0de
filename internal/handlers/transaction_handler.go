package handlers

import (
	"github.com/gin-gonic/gin"

	"shopperks/internal/models"
	"shopperks/internal/services"
	"shopperks/internal/utils"
	"shopperks/internal/validators"
)

type TransactionHandler struct {
	transactionService services.TransactionService
	pointsService      services.PointsService
}

func NewTransactionHandler(transactionService services.TransactionService, pointsService services.PointsService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		pointsService:      pointsService,
	}
}

// CreateTransaction records a new pending transaction
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var request validators.TransactionCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateTransactionCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationErrorDetails(errs))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), &services.CreateTransactionRequest{
		CustomerID:     request.CustomerID,
		CampaignID:     request.CampaignID,
		Type:           models.TransactionType(request.Type),
		Amount:         request.Amount,
		PointsToRedeem: request.PointsToRedeem,
		BillImageURL:   request.BillImageURL,
		Notes:          request.Notes,
	})
	if err != nil {
		serviceErrorResponse(c, err, "TRANSACTION_CREATE_FAILED", "Failed to create transaction")
		return
	}

	utils.CreatedResponse(c, "Transaction created successfully", transaction)
}

// ReviewTransaction approves or rejects a pending transaction
func (h *TransactionHandler) ReviewTransaction(c *gin.Context) {
	transactionID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var request validators.TransactionReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateTransactionReview(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationErrorDetails(errs))
		return
	}

	reviewerID, ok := currentUserID(c)
	if !ok {
		return
	}

	transaction, err := h.transactionService.RequestStatusChange(c.Request.Context(), transactionID, models.TransactionStatus(request.Status), &reviewerID)
	if err != nil {
		serviceErrorResponse(c, err, "TRANSACTION_REVIEW_FAILED", "Failed to review transaction")
		return
	}

	utils.SuccessResponse(c, "Transaction reviewed successfully", transaction)
}

// GetTransaction retrieves transaction details
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transactionID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	transaction, err := h.transactionService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		serviceErrorResponse(c, err, "TRANSACTION_FETCH_FAILED", "Failed to get transaction")
		return
	}

	utils.SuccessResponse(c, "Transaction retrieved successfully", transaction)
}

// GetCustomerTransactions retrieves a customer's transaction history
func (h *TransactionHandler) GetCustomerTransactions(c *gin.Context) {
	customerID, ok := objectIDParam(c, "customer_id")
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	transactions, total, err := h.transactionService.GetCustomerTransactions(c.Request.Context(), customerID, params)
	if err != nil {
		serviceErrorResponse(c, err, "TRANSACTION_HISTORY_FAILED", "Failed to get transactions")
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	response := map[string]interface{}{
		"transactions": transactions,
	}

	utils.SuccessResponseWithMeta(c, "Transactions retrieved successfully", response, meta)
}

// GetPendingTransactions lists transactions awaiting review
func (h *TransactionHandler) GetPendingTransactions(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	transactions, total, err := h.transactionService.GetPendingTransactions(c.Request.Context(), params)
	if err != nil {
		serviceErrorResponse(c, err, "TRANSACTION_PENDING_FAILED", "Failed to get pending transactions")
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	response := map[string]interface{}{
		"transactions": transactions,
	}

	utils.SuccessResponseWithMeta(c, "Pending transactions retrieved successfully", response, meta)
}

// GetCampaignTransactions retrieves transactions for a specific campaign
func (h *TransactionHandler) GetCampaignTransactions(c *gin.Context) {
	campaignID, ok := objectIDParam(c, "campaign_id")
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	transactions, total, err := h.transactionService.GetCampaignTransactions(c.Request.Context(), campaignID, params)
	if err != nil {
		serviceErrorResponse(c, err, "CAMPAIGN_TRANSACTIONS_FAILED", "Failed to get campaign transactions")
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	response := map[string]interface{}{
		"transactions": transactions,
	}

	utils.SuccessResponseWithMeta(c, "Campaign transactions retrieved successfully", response, meta)
}

// PreviewPoints computes the points a purchase amount would earn
func (h *TransactionHandler) PreviewPoints(c *gin.Context) {
	var request validators.RedemptionPreviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	points, err := h.pointsService.PreviewPoints(c.Request.Context(), request.CampaignID, request.Amount)
	if err != nil {
		serviceErrorResponse(c, err, "POINTS_PREVIEW_FAILED", "Failed to preview points")
		return
	}

	utils.SuccessResponse(c, "Points preview computed", gin.H{"points": points})
}

// PreviewRedemption computes the discount a point spend would produce
func (h *TransactionHandler) PreviewRedemption(c *gin.Context) {
	var request validators.RedemptionPreviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateRedemptionPreview(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationErrorDetails(errs))
		return
	}

	result, err := h.pointsService.PreviewRedemption(c.Request.Context(), request.CampaignID, request.PointsToRedeem, request.Amount)
	if err != nil {
		serviceErrorResponse(c, err, "REDEMPTION_PREVIEW_FAILED", "Failed to preview redemption")
		return
	}

	utils.SuccessResponse(c, "Redemption preview computed", result)
}
