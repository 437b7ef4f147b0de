package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionIsTerminal(t *testing.T) {
	assert.False(t, (&Transaction{Status: TransactionStatusPending}).IsTerminal())
	assert.True(t, (&Transaction{Status: TransactionStatusApproved}).IsTerminal())
	assert.True(t, (&Transaction{Status: TransactionStatusRejected}).IsTerminal())
}

func TestIsValidTransactionStatus(t *testing.T) {
	assert.True(t, IsValidTransactionStatus(TransactionStatusPending))
	assert.True(t, IsValidTransactionStatus(TransactionStatusApproved))
	assert.True(t, IsValidTransactionStatus(TransactionStatusRejected))
	assert.False(t, IsValidTransactionStatus(TransactionStatus("cancelled")))
	assert.False(t, IsValidTransactionStatus(TransactionStatus("")))
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypePurchase))
	assert.True(t, IsValidTransactionType(TransactionTypeReferral))
	assert.True(t, IsValidTransactionType(TransactionTypeRedemption))
	assert.False(t, IsValidTransactionType(TransactionType("cashback")))
}
