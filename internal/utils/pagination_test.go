package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParamsNilReceiver(t *testing.T) {
	var params *PaginationParams

	assert.Equal(t, 0, params.GetSkip())
	assert.Equal(t, DefaultPageSize, params.GetLimit())

	opts := params.GetSortOptions()
	require.NotNil(t, opts)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(DefaultPageSize), *opts.Limit)
}

func TestPaginationParamsWindow(t *testing.T) {
	params := &PaginationParams{Page: 3, PageSize: 20, Sort: "created_at", Order: "desc"}

	assert.Equal(t, 40, params.GetSkip())
	assert.Equal(t, 20, params.GetLimit())

	opts := params.GetSortOptions()
	require.NotNil(t, opts.Skip)
	assert.Equal(t, int64(40), *opts.Skip)
}

func TestCreatePaginationMeta(t *testing.T) {
	meta := CreatePaginationMeta(&PaginationParams{Page: 2, PageSize: 10}, 35)

	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)
}
