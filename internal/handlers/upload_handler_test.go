package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopperks/pkg/storage"
)

func TestBillKeyFromName(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	key, ok := billKeyFromName(id + ".jpg")
	assert.True(t, ok)
	assert.Equal(t, storage.BillKeyPrefix+id+".jpg", key)

	key, ok = billKeyFromName(id + ".PDF")
	assert.True(t, ok)
	assert.Equal(t, storage.BillKeyPrefix+id+".pdf", key)

	for _, name := range []string{
		"",
		id,
		id + ".exe",
		"not-an-id.jpg",
		"../" + id + ".jpg",
		id + ".jpg/../secret.jpg",
	} {
		_, ok := billKeyFromName(name)
		assert.False(t, ok, name)
	}
}
