package services

import (
	"context"
	"testing"

	"shopperks/internal/models"
	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/repositories/memory"
	"shopperks/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCustomerRegister(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()
	svc := NewCustomerService(repo, nil, nil)

	shopID := primitive.NewObjectID()
	customer, err := svc.Register(ctx, &RegisterCustomerRequest{
		ShopID: &shopID,
		Name:   "Asha Verma",
		Phone:  "+15550100200",
		Email:  "asha@example.com",
	})
	require.NoError(t, err)

	assert.False(t, customer.ID.IsZero())
	assert.Len(t, customer.ReferralCode, utils.ReferralCodeLength)
	assert.True(t, customer.IsActive)
	assert.Equal(t, 0, customer.TotalPoints)

	found, err := svc.GetByReferralCode(ctx, customer.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, found.ID)
}

func TestCustomerRegisterDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(memory.NewCustomerRepository(), nil, nil)

	_, err := svc.Register(ctx, &RegisterCustomerRequest{Name: "First", Phone: "+15550100300"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterCustomerRequest{Name: "Second", Phone: "+15550100300"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), utils.ErrCustomerExists)
}

func TestGetAvailablePoints(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()
	svc := NewCustomerService(repo, nil, nil)

	customer := &models.Customer{
		Name:           "Balance",
		Phone:          "+15550100400",
		ReferralCode:   "BAL12345",
		TotalPoints:    1200,
		RedeemedPoints: 450,
		IsActive:       true,
	}
	require.NoError(t, repo.Create(ctx, customer))

	available, err := svc.GetAvailablePoints(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 750, available)

	_, err = svc.GetAvailablePoints(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, interfaces.ErrCustomerNotFound)
}

func TestGetCustomerUnknown(t *testing.T) {
	svc := NewCustomerService(memory.NewCustomerRepository(), nil, nil)

	_, err := svc.GetCustomer(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, interfaces.ErrCustomerNotFound)
}
