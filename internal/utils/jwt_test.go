package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenPairRoundTrip(t *testing.T) {
	userID := primitive.NewObjectID()
	secret := "test-secret-key"

	pair, err := GenerateTokenPair(userID, UserTypeShop, "+15550100600", secret)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := ValidateToken(pair.AccessToken, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, UserTypeShop, claims.UserType)
	assert.Equal(t, "+15550100600", claims.Phone)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	pair, err := GenerateTokenPair(primitive.NewObjectID(), UserTypeCustomer, "", "right-secret")
	require.NoError(t, err)

	_, err = ValidateToken(pair.AccessToken, "wrong-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "secret")
	assert.Error(t, err)
}
