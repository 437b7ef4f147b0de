package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/utils"
	"shopperks/pkg/logger"
	"shopperks/pkg/sms"
	"shopperks/pkg/websocket"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateTransactionRequest struct {
	CustomerID     primitive.ObjectID  `json:"customer_id" validate:"required"`
	CampaignID     *primitive.ObjectID `json:"campaign_id"`
	Type           models.TransactionType `json:"type" validate:"required"`
	Amount         float64             `json:"amount" validate:"min=0"`
	Points         int                 `json:"points"`
	PointsToRedeem int                 `json:"points_to_redeem" validate:"min=0"`
	BillImageURL   string              `json:"bill_image_url"`
	Notes          string              `json:"notes"`
}

type TransactionService interface {
	// CreateTransaction records a purchase, referral or redemption event.
	// Status is always forced to pending regardless of caller input.
	CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (*models.Transaction, error)

	// RequestStatusChange is the only entry point that can move points.
	// It validates the requested transition, persists it, and applies the
	// transaction's stored net points to the customer ledger on a genuine
	// pending to approved transition, exactly once.
	RequestStatusChange(ctx context.Context, transactionID primitive.ObjectID, status models.TransactionStatus, reviewedBy *primitive.ObjectID) (*models.Transaction, error)

	// ApplyPoints is the ledger updater: it adds pointsDelta to the
	// customer's total points. No floor is applied here; redemption
	// validation happens before a transaction is ever created.
	ApplyPoints(ctx context.Context, customerID primitive.ObjectID, pointsDelta int) (*models.Customer, error)

	GetTransaction(ctx context.Context, transactionID primitive.ObjectID) (*models.Transaction, error)
	GetCustomerTransactions(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transaction, int64, error)
	GetPendingTransactions(ctx context.Context, params *utils.PaginationParams) ([]*models.Transaction, int64, error)
	GetCampaignTransactions(ctx context.Context, campaignID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transaction, int64, error)
}

type transactionService struct {
	transactionRepo interfaces.TransactionRepository
	customerRepo    interfaces.CustomerRepository
	campaignRepo    interfaces.CampaignRepository
	runner          interfaces.TxRunner
	smsProvider     sms.SMSProvider
	wsHandler       *websocket.Handler
	logger          *logger.Logger
}

func NewTransactionService(
	transactionRepo interfaces.TransactionRepository,
	customerRepo interfaces.CustomerRepository,
	campaignRepo interfaces.CampaignRepository,
	runner interfaces.TxRunner,
	smsProvider sms.SMSProvider,
	wsHandler *websocket.Handler,
	log *logger.Logger,
) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
		campaignRepo:    campaignRepo,
		runner:          runner,
		smsProvider:     smsProvider,
		wsHandler:       wsHandler,
		logger:          log,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (*models.Transaction, error) {
	if !models.IsValidTransactionType(req.Type) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	transaction := &models.Transaction{
		CustomerID:   req.CustomerID,
		CampaignID:   req.CampaignID,
		Type:         req.Type,
		Status:       models.TransactionStatusPending,
		Amount:       req.Amount,
		Points:       req.Points,
		BillImageURL: req.BillImageURL,
		Notes:        req.Notes,
	}

	var campaign *models.Campaign
	if req.CampaignID != nil {
		campaign, err = s.campaignRepo.GetByID(ctx, *req.CampaignID)
		if err != nil {
			return nil, fmt.Errorf("failed to get campaign: %w", err)
		}
		if !campaign.IsActive {
			return nil, ErrCampaignInactive
		}
	}

	switch req.Type {
	case models.TransactionTypePurchase:
		// The campaign's rule list is authoritative when present; the
		// evaluator overrides whatever the client precomputed.
		if campaign != nil {
			if req.Amount >= campaign.MinPurchaseAmount {
				transaction.Points = EvaluatePoints(req.Amount, campaign.PointRules)
			} else {
				transaction.Points = 0
			}
		}

	case models.TransactionTypeRedemption:
		if campaign == nil {
			return nil, ErrCampaignRequired
		}
		if req.PointsToRedeem > customer.AvailablePoints() {
			return nil, fmt.Errorf("%w: requested %d, available %d",
				ErrInsufficientPoints, req.PointsToRedeem, customer.AvailablePoints())
		}

		earned := 0
		if req.Amount >= campaign.MinPurchaseAmount {
			earned = EvaluatePoints(req.Amount, campaign.PointRules)
		}
		result := ComputeRedemption(req.PointsToRedeem, req.Amount, campaign.PointsRedemptionValue, campaign.PointsRedemptionDiscount)

		// One transaction carries the net delta instead of a separate
		// earn and spend pair.
		transaction.Points = earned - req.PointsToRedeem
		transaction.PointsRedeemed = req.PointsToRedeem
		transaction.DiscountAmount = result.DiscountAmount
		transaction.FinalAmount = result.FinalAmount
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logEvent(transaction, utils.EventTransactionCreated)
	s.broadcast(transaction, campaign, utils.EventTransactionCreated)

	return transaction, nil
}

func (s *transactionService) RequestStatusChange(ctx context.Context, transactionID primitive.ObjectID, status models.TransactionStatus, reviewedBy *primitive.ObjectID) (*models.Transaction, error) {
	if !models.IsValidTransactionStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	// Duplicate or retried requests for the already-current status are a
	// no-op; this is what makes the approve path idempotent.
	if transaction.Status == status {
		return transaction, nil
	}

	// approved and rejected are terminal.
	if transaction.IsTerminal() {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, transaction.Status, status)
	}

	awardPoints := transaction.Status == models.TransactionStatusPending && status == models.TransactionStatusApproved

	// The status write and the ledger update are sequenced inside one
	// atomic unit: a failure in either leaves the transaction fully
	// pending and the balance untouched, so the request is safe to retry.
	// The status write is a compare-and-set against the status read above,
	// so a concurrent reviewer racing this request cannot make the ledger
	// update run twice.
	err = s.runInTx(ctx, func(ctx context.Context) error {
		if err := s.transactionRepo.UpdateStatus(ctx, transactionID, transaction.Status, status, reviewedBy); err != nil {
			if errors.Is(err, interfaces.ErrStatusConflict) {
				return err
			}
			return fmt.Errorf("failed to update status: %w", err)
		}

		if awardPoints {
			if _, err := s.ApplyPoints(ctx, transaction.CustomerID, transaction.Points); err != nil {
				return fmt.Errorf("failed to apply points: %w", err)
			}
		}

		return nil
	})
	if errors.Is(err, interfaces.ErrStatusConflict) {
		// Someone else won the race. Re-read and re-evaluate: a request
		// for the status that actually landed is still an idempotent
		// no-op, anything else is a transition out of a terminal state.
		current, readErr := s.transactionRepo.GetByID(ctx, transactionID)
		if readErr != nil {
			return nil, fmt.Errorf("failed to get transaction: %w", readErr)
		}
		if current.Status == status {
			return current, nil
		}
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	transaction.Status = status
	transaction.ReviewedBy = reviewedBy
	transaction.ReviewedAt = &now
	transaction.UpdatedAt = now

	event := utils.EventTransactionRejected
	if status == models.TransactionStatusApproved {
		event = utils.EventTransactionApproved
	}

	s.logEvent(transaction, event)
	s.broadcast(transaction, nil, event)
	s.notifyCustomer(ctx, transaction)

	return transaction, nil
}

func (s *transactionService) ApplyPoints(ctx context.Context, customerID primitive.ObjectID, pointsDelta int) (*models.Customer, error) {
	customer, err := s.customerRepo.IncrementPoints(ctx, customerID, pointsDelta, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to apply points: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(map[string]interface{}{
			"customer_id":  customerID.Hex(),
			"points_delta": pointsDelta,
			"total_points": customer.TotalPoints,
			"type":         utils.EventPointsApplied,
		}).Info("Points applied to customer ledger")
	}

	return customer, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID primitive.ObjectID) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, transactionID)
}

func (s *transactionService) GetCustomerTransactions(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	return s.transactionRepo.GetByCustomerID(ctx, customerID, params)
}

func (s *transactionService) GetPendingTransactions(ctx context.Context, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	return s.transactionRepo.GetByStatus(ctx, models.TransactionStatusPending, params)
}

func (s *transactionService) GetCampaignTransactions(ctx context.Context, campaignID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	return s.transactionRepo.GetByCampaignID(ctx, campaignID, params)
}

func (s *transactionService) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.runner == nil {
		return fn(ctx)
	}
	return s.runner.Run(ctx, fn)
}

// notifyCustomer sends a review-outcome SMS. Best effort: a delivery
// failure never fails the transition that triggered it.
func (s *transactionService) notifyCustomer(ctx context.Context, transaction *models.Transaction) {
	if s.smsProvider == nil {
		return
	}

	customer, err := s.customerRepo.GetByID(ctx, transaction.CustomerID)
	if err != nil || customer.Phone == "" {
		return
	}

	var message string
	switch transaction.Status {
	case models.TransactionStatusApproved:
		if transaction.Points >= 0 {
			message = fmt.Sprintf("Your %s was approved. %d points were added to your balance.", transaction.Type, transaction.Points)
		} else {
			message = fmt.Sprintf("Your %s was approved. %d points were deducted from your balance.", transaction.Type, -transaction.Points)
		}
	case models.TransactionStatusRejected:
		message = fmt.Sprintf("Your %s could not be approved. Contact the shop for details.", transaction.Type)
	default:
		return
	}

	_, err = s.smsProvider.SendSMS(ctx, &sms.SMSRequest{
		To:      customer.Phone,
		Message: message,
		Type:    sms.TypeTransactional,
	})
	if err != nil && s.logger != nil {
		s.logger.WithError(err).WithField("customer_id", customer.ID.Hex()).Warn("Failed to send review notification")
	}
}

func (s *transactionService) logEvent(transaction *models.Transaction, event string) {
	if s.logger == nil {
		return
	}
	s.logger.LogTransactionEvent(transaction.ID, event, map[string]interface{}{
		"customer_id": transaction.CustomerID.Hex(),
		"tx_type":     string(transaction.Type),
		"status":      string(transaction.Status),
		"points":      transaction.Points,
		"amount":      transaction.Amount,
	})
}

func (s *transactionService) broadcast(transaction *models.Transaction, campaign *models.Campaign, event string) {
	if s.wsHandler == nil {
		return
	}

	data := map[string]interface{}{
		"transaction_id": transaction.ID.Hex(),
		"customer_id":    transaction.CustomerID.Hex(),
		"tx_type":        string(transaction.Type),
		"status":         string(transaction.Status),
		"points":         transaction.Points,
		"amount":         transaction.Amount,
	}

	s.wsHandler.SendCustomerNotification(transaction.CustomerID, event, data)

	if campaign != nil {
		s.wsHandler.SendShopUpdate(campaign.ShopID, event, data)
	} else if transaction.CampaignID != nil {
		data["campaign_id"] = transaction.CampaignID.Hex()
		s.wsHandler.SendCampaignUpdate(*transaction.CampaignID, event, data)
	}
}
