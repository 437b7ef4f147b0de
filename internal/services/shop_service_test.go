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
	"golang.org/x/crypto/bcrypt"
)

func TestShopRegister(t *testing.T) {
	ctx := context.Background()
	svc := NewShopService(memory.NewShopRepository(), nil)

	shop, err := svc.Register(ctx, &RegisterShopRequest{
		Name:     "Corner Cafe",
		Email:    "owner@cornercafe.test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.False(t, shop.ID.IsZero())
	assert.True(t, shop.IsActive)
	assert.NotEqual(t, "s3cret-pass", shop.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(shop.PasswordHash), []byte("s3cret-pass")))
}

func TestShopRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewShopService(memory.NewShopRepository(), nil)

	_, err := svc.Register(ctx, &RegisterShopRequest{Name: "First", Email: "dup@shop.test", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterShopRequest{Name: "Second", Email: "dup@shop.test", Password: "password2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), utils.ErrShopExists)
}

func TestShopAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewShopService(memory.NewShopRepository(), nil)

	registered, err := svc.Register(ctx, &RegisterShopRequest{
		Name:     "Auth Shop",
		Email:    "auth@shop.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	shop, err := svc.Authenticate(ctx, "auth@shop.test", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, shop.ID)

	_, err = svc.Authenticate(ctx, "auth@shop.test", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@shop.test", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestShopAuthenticateDisabled(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewShopRepository()
	svc := NewShopService(repo, nil)

	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	shop := &models.Shop{
		Name:         "Closed Shop",
		Email:        "closed@shop.test",
		PasswordHash: string(hash),
		IsActive:     false,
	}
	require.NoError(t, repo.Create(ctx, shop))

	_, err = svc.Authenticate(ctx, "closed@shop.test", "password1")
	assert.ErrorIs(t, err, ErrShopDisabled)
}

func TestGetShopUnknown(t *testing.T) {
	svc := NewShopService(memory.NewShopRepository(), nil)

	_, err := svc.GetShop(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, interfaces.ErrShopNotFound)
}
