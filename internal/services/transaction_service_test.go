package services

import (
	"context"
	"sync"
	"testing"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type transactionFixture struct {
	svc             TransactionService
	transactionRepo interfaces.TransactionRepository
	customerRepo    interfaces.CustomerRepository
	campaignRepo    interfaces.CampaignRepository
}

func newTransactionFixture() *transactionFixture {
	transactionRepo := memory.NewTransactionRepository()
	customerRepo := memory.NewCustomerRepository()
	campaignRepo := memory.NewCampaignRepository()
	svc := NewTransactionService(
		transactionRepo,
		customerRepo,
		campaignRepo,
		memory.NewPassthroughRunner(),
		nil, nil, nil,
	)
	return &transactionFixture{
		svc:             svc,
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
		campaignRepo:    campaignRepo,
	}
}

func (f *transactionFixture) seedCustomer(t *testing.T, totalPoints, redeemedPoints int) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		Name:           "Asha",
		Phone:          "+15550100200",
		ReferralCode:   "ASHA2024",
		TotalPoints:    totalPoints,
		RedeemedPoints: redeemedPoints,
		IsActive:       true,
	}
	require.NoError(t, f.customerRepo.Create(context.Background(), customer))
	return customer
}

func (f *transactionFixture) seedCampaign(t *testing.T, campaign *models.Campaign) *models.Campaign {
	t.Helper()
	if campaign.Name == "" {
		campaign.Name = "Rewards"
	}
	if campaign.ShopID.IsZero() {
		campaign.ShopID = primitive.NewObjectID()
	}
	require.NoError(t, f.campaignRepo.Create(context.Background(), campaign))
	return campaign
}

func TestCreateTransactionForcesPendingStatus(t *testing.T) {
	f := newTransactionFixture()
	customer := f.seedCustomer(t, 0, 0)

	transaction, err := f.svc.CreateTransaction(context.Background(), &CreateTransactionRequest{
		CustomerID: customer.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     50,
		Points:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, transaction.Status)
	assert.False(t, transaction.ID.IsZero())
}

func TestCreatePurchaseEvaluatesCampaignTiers(t *testing.T) {
	f := newTransactionFixture()
	customer := f.seedCustomer(t, 1000, 0)
	campaign := f.seedCampaign(t, &models.Campaign{
		PointRules: []models.PointRule{
			{MinAmount: 0, MaxAmount: 99, Points: 5},
			{MinAmount: 100, MaxAmount: 199, Points: 15},
		},
		IsActive: true,
	})

	transaction, err := f.svc.CreateTransaction(context.Background(), &CreateTransactionRequest{
		CustomerID: customer.ID,
		CampaignID: &campaign.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     150,
		Points:     9999, // client-supplied points are overridden by campaign rules
	})
	require.NoError(t, err)
	assert.Equal(t, 15, transaction.Points)
}

func TestCreatePurchaseBelowCampaignMinimum(t *testing.T) {
	f := newTransactionFixture()
	customer := f.seedCustomer(t, 0, 0)
	campaign := f.seedCampaign(t, &models.Campaign{
		PointRules:        []models.PointRule{{MinAmount: 0, MaxAmount: 1000, Points: 50}},
		MinPurchaseAmount: 100,
		IsActive:          true,
	})

	transaction, err := f.svc.CreateTransaction(context.Background(), &CreateTransactionRequest{
		CustomerID: customer.ID,
		CampaignID: &campaign.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     60,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, transaction.Points)
}

func TestCreatePurchaseWithoutCampaignKeepsClientPoints(t *testing.T) {
	f := newTransactionFixture()
	customer := f.seedCustomer(t, 0, 0)

	transaction, err := f.svc.CreateTransaction(context.Background(), &CreateTransactionRequest{
		CustomerID: customer.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     75,
		Points:     12,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, transaction.Points)
}

func TestCreateTransactionInactiveCampaign(t *testing.T) {
	f := newTransactionFixture()
	customer := f.seedCustomer(t, 0, 0)
	campaign := f.seedCampaign(t, &models.Campaign{IsActive: false})

	_, err := f.svc.CreateTransaction(context.Background(), &CreateTransactionRequest{
		CustomerID: customer.ID,
		CampaignID: &campaign.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     50,
	})
	assert.ErrorIs(t, err, ErrCampaignInactive)
}

func TestCreateTransactionUnknownCustomer(t *testing.T) {
	f := newTransactionFixture()

	_, err := f.svc.CreateTransaction(context.Background(), &CreateTransactionRequest{
		CustomerID: primitive.NewObjectID(),
		Type:       models.TransactionTypePurchase,
		Amount:     50,
	})
	assert.ErrorIs(t, err, interfaces.ErrCustomerNotFound)
}

func TestCreateTransactionInvalidType(t *testing.T) {
	f := newTransactionFixture()
	customer := f.seedCustomer(t, 0, 0)

	_, err := f.svc.CreateTransaction(context.Background(), &CreateTransactionRequest{
		CustomerID: customer.ID,
		Type:       models.TransactionType("cashback"),
		Amount:     50,
	})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestCreateRedemptionNetsEarnedAgainstSpent(t *testing.T) {
	f := newTransactionFixture()
	customer := f.seedCustomer(t, 1000, 0)
	campaign := f.seedCampaign(t, &models.Campaign{
		PointRules:               []models.PointRule{{MinAmount: 0, MaxAmount: 500, Points: 20}},
		PointsRedemptionValue:    100,
		PointsRedemptionDiscount: 10,
		IsActive:                 true,
	})

	transaction, err := f.svc.CreateTransaction(context.Background(), &CreateTransactionRequest{
		CustomerID:     customer.ID,
		CampaignID:     &campaign.ID,
		Type:           models.TransactionTypeRedemption,
		Amount:         200,
		PointsToRedeem: 300,
	})
	require.NoError(t, err)

	assert.Equal(t, 20-300, transaction.Points)
	assert.Equal(t, 300, transaction.PointsRedeemed)
	assert.InDelta(t, 60.0, transaction.DiscountAmount, 1e-9)
	assert.InDelta(t, 140.0, transaction.FinalAmount, 1e-9)
	assert.Equal(t, models.TransactionStatusPending, transaction.Status)
}

func TestCreateRedemptionRequiresCampaign(t *testing.T) {
	f := newTransactionFixture()
	customer := f.seedCustomer(t, 1000, 0)

	_, err := f.svc.CreateTransaction(context.Background(), &CreateTransactionRequest{
		CustomerID:     customer.ID,
		Type:           models.TransactionTypeRedemption,
		Amount:         200,
		PointsToRedeem: 100,
	})
	assert.ErrorIs(t, err, ErrCampaignRequired)
}

func TestCreateRedemptionInsufficientBalance(t *testing.T) {
	f := newTransactionFixture()
	// Available balance is total minus redeemed, so 400 here.
	customer := f.seedCustomer(t, 1000, 600)
	campaign := f.seedCampaign(t, &models.Campaign{
		PointsRedemptionValue:    100,
		PointsRedemptionDiscount: 10,
		IsActive:                 true,
	})

	_, err := f.svc.CreateTransaction(context.Background(), &CreateTransactionRequest{
		CustomerID:     customer.ID,
		CampaignID:     &campaign.ID,
		Type:           models.TransactionTypeRedemption,
		Amount:         200,
		PointsToRedeem: 500,
	})
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestApproveAppliesPointsExactlyOnce(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()
	customer := f.seedCustomer(t, 1000, 0)
	campaign := f.seedCampaign(t, &models.Campaign{
		PointRules: []models.PointRule{
			{MinAmount: 0, MaxAmount: 99, Points: 5},
			{MinAmount: 100, MaxAmount: 199, Points: 15},
		},
		IsActive: true,
	})

	transaction, err := f.svc.CreateTransaction(ctx, &CreateTransactionRequest{
		CustomerID: customer.ID,
		CampaignID: &campaign.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     150,
	})
	require.NoError(t, err)
	require.Equal(t, 15, transaction.Points)

	reviewer := primitive.NewObjectID()
	approved, err := f.svc.RequestStatusChange(ctx, transaction.ID, models.TransactionStatusApproved, &reviewer)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, reviewer, *approved.ReviewedBy)
	assert.NotNil(t, approved.ReviewedAt)

	updated, err := f.customerRepo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1015, updated.TotalPoints)

	// Retrying the same approval is a no-op and must not touch the ledger.
	again, err := f.svc.RequestStatusChange(ctx, transaction.ID, models.TransactionStatusApproved, &reviewer)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusApproved, again.Status)

	updated, err = f.customerRepo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1015, updated.TotalPoints)
}

func TestRejectLeavesLedgerUntouched(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()
	customer := f.seedCustomer(t, 500, 0)

	transaction, err := f.svc.CreateTransaction(ctx, &CreateTransactionRequest{
		CustomerID: customer.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     50,
		Points:     25,
	})
	require.NoError(t, err)

	rejected, err := f.svc.RequestStatusChange(ctx, transaction.ID, models.TransactionStatusRejected, nil)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusRejected, rejected.Status)

	updated, err := f.customerRepo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 500, updated.TotalPoints)
}

func TestTerminalStatusIsImmutable(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()
	customer := f.seedCustomer(t, 0, 0)

	tests := []struct {
		name    string
		firstTo models.TransactionStatus
		thenTo  models.TransactionStatus
	}{
		{"approved to rejected", models.TransactionStatusApproved, models.TransactionStatusRejected},
		{"approved to pending", models.TransactionStatusApproved, models.TransactionStatusPending},
		{"rejected to approved", models.TransactionStatusRejected, models.TransactionStatusApproved},
		{"rejected to pending", models.TransactionStatusRejected, models.TransactionStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transaction, err := f.svc.CreateTransaction(ctx, &CreateTransactionRequest{
				CustomerID: customer.ID,
				Type:       models.TransactionTypePurchase,
				Amount:     10,
			})
			require.NoError(t, err)

			_, err = f.svc.RequestStatusChange(ctx, transaction.ID, tt.firstTo, nil)
			require.NoError(t, err)

			_, err = f.svc.RequestStatusChange(ctx, transaction.ID, tt.thenTo, nil)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestSameStatusRequestIsNoOp(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()
	customer := f.seedCustomer(t, 0, 0)

	transaction, err := f.svc.CreateTransaction(ctx, &CreateTransactionRequest{
		CustomerID: customer.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     10,
	})
	require.NoError(t, err)

	same, err := f.svc.RequestStatusChange(ctx, transaction.ID, models.TransactionStatusPending, nil)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, same.Status)
}

func TestRequestStatusChangeValidation(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()

	_, err := f.svc.RequestStatusChange(ctx, primitive.NewObjectID(), models.TransactionStatusApproved, nil)
	assert.ErrorIs(t, err, interfaces.ErrTransactionNotFound)

	customer := f.seedCustomer(t, 0, 0)
	transaction, err := f.svc.CreateTransaction(ctx, &CreateTransactionRequest{
		CustomerID: customer.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     10,
	})
	require.NoError(t, err)

	_, err = f.svc.RequestStatusChange(ctx, transaction.ID, models.TransactionStatus("cancelled"), nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestApproveRedemptionAppliesNetDelta(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()
	customer := f.seedCustomer(t, 1000, 0)
	campaign := f.seedCampaign(t, &models.Campaign{
		PointRules:               []models.PointRule{{MinAmount: 0, MaxAmount: 500, Points: 20}},
		PointsRedemptionValue:    100,
		PointsRedemptionDiscount: 10,
		IsActive:                 true,
	})

	transaction, err := f.svc.CreateTransaction(ctx, &CreateTransactionRequest{
		CustomerID:     customer.ID,
		CampaignID:     &campaign.ID,
		Type:           models.TransactionTypeRedemption,
		Amount:         200,
		PointsToRedeem: 300,
	})
	require.NoError(t, err)
	require.Equal(t, -280, transaction.Points)

	_, err = f.svc.RequestStatusChange(ctx, transaction.ID, models.TransactionStatusApproved, nil)
	require.NoError(t, err)

	updated, err := f.customerRepo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 720, updated.TotalPoints)
}

func TestApprovalOrderDoesNotAffectFinalBalance(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()
	customer := f.seedCustomer(t, 100, 0)

	pointsByTx := []int{5, 15, 40, 25, 10}
	var ids []primitive.ObjectID
	for _, points := range pointsByTx {
		transaction, err := f.svc.CreateTransaction(ctx, &CreateTransactionRequest{
			CustomerID: customer.ID,
			Type:       models.TransactionTypePurchase,
			Amount:     10,
			Points:     points,
		})
		require.NoError(t, err)
		ids = append(ids, transaction.ID)
	}

	// Approve out of creation order; the final balance is the initial
	// total plus the sum of every approved delta regardless of sequence.
	for _, i := range []int{3, 0, 4, 2, 1} {
		_, err := f.svc.RequestStatusChange(ctx, ids[i], models.TransactionStatusApproved, nil)
		require.NoError(t, err)
	}

	updated, err := f.customerRepo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 100+5+15+40+25+10, updated.TotalPoints)
}

func TestConcurrentApprovalsApplyPointsOnce(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()
	customer := f.seedCustomer(t, 0, 0)

	transaction, err := f.svc.CreateTransaction(ctx, &CreateTransactionRequest{
		CustomerID: customer.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     50,
		Points:     30,
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.RequestStatusChange(ctx, transaction.ID, models.TransactionStatusApproved, nil)
		}(i)
	}
	wg.Wait()

	// Every racer either applied the transition or observed it already
	// applied; none may double-apply the ledger update.
	for _, err := range errs {
		assert.NoError(t, err)
	}

	updated, err := f.customerRepo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, updated.TotalPoints)
}

func TestUpdateStatusRequiresCurrentStatus(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()
	customer := f.seedCustomer(t, 0, 0)

	transaction, err := f.svc.CreateTransaction(ctx, &CreateTransactionRequest{
		CustomerID: customer.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     10,
	})
	require.NoError(t, err)

	repo := f.transactionRepo
	require.NoError(t, repo.UpdateStatus(ctx, transaction.ID, models.TransactionStatusPending, models.TransactionStatusApproved, nil))

	// A writer holding a stale view of the status must not overwrite.
	err = repo.UpdateStatus(ctx, transaction.ID, models.TransactionStatusPending, models.TransactionStatusRejected, nil)
	assert.ErrorIs(t, err, interfaces.ErrStatusConflict)

	current, err := repo.GetByID(ctx, transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusApproved, current.Status)
}

func TestGetPendingTransactions(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()
	customer := f.seedCustomer(t, 0, 0)

	for i := 0; i < 3; i++ {
		_, err := f.svc.CreateTransaction(ctx, &CreateTransactionRequest{
			CustomerID: customer.ID,
			Type:       models.TransactionTypePurchase,
			Amount:     10,
		})
		require.NoError(t, err)
	}

	first, err := f.svc.CreateTransaction(ctx, &CreateTransactionRequest{
		CustomerID: customer.ID,
		Type:       models.TransactionTypePurchase,
		Amount:     10,
	})
	require.NoError(t, err)
	_, err = f.svc.RequestStatusChange(ctx, first.ID, models.TransactionStatusApproved, nil)
	require.NoError(t, err)

	pending, total, err := f.svc.GetPendingTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, transaction := range pending {
		assert.Equal(t, models.TransactionStatusPending, transaction.Status)
	}
}
