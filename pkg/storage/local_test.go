package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalFixture(t *testing.T) *LocalStorage {
	t.Helper()

	provider, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/files/")
	require.NoError(t, err)
	return provider
}

func TestLocalUploadWritesBillUnderRoot(t *testing.T) {
	provider := newLocalFixture(t)

	key := BillKey(".jpg")
	result, err := provider.Upload(context.Background(), &UploadRequest{
		Key:         key,
		Reader:      strings.NewReader("bill-bytes"),
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)

	assert.Equal(t, key, result.Key)
	assert.Equal(t, int64(len("bill-bytes")), result.Size)
	assert.Equal(t, "http://localhost:8080/files/"+key, result.URL)

	data, err := os.ReadFile(filepath.Join(provider.basePath, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "bill-bytes", string(data))
}

func TestLocalDeleteRemovesBill(t *testing.T) {
	provider := newLocalFixture(t)

	key := BillKey(".png")
	_, err := provider.Upload(context.Background(), &UploadRequest{
		Key:    key,
		Reader: strings.NewReader("x"),
	})
	require.NoError(t, err)

	require.NoError(t, provider.Delete(context.Background(), key))

	_, err = os.Stat(filepath.Join(provider.basePath, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalRejectsTraversalKeys(t *testing.T) {
	provider := newLocalFixture(t)

	for _, key := range []string{"../outside.jpg", "bills/../../etc/passwd", "/etc/passwd", "."} {
		_, err := provider.Upload(context.Background(), &UploadRequest{
			Key:    key,
			Reader: strings.NewReader("x"),
		})
		assert.ErrorIs(t, err, ErrInvalidKey, key)

		_, err = provider.SignedURL(context.Background(), key, time.Minute)
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestBillKeyLayout(t *testing.T) {
	key := BillKey(".pdf")

	assert.True(t, strings.HasPrefix(key, BillKeyPrefix))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotEqual(t, key, BillKey(".pdf"))
}
