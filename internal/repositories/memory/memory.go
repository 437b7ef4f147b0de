// Package memory provides map-backed implementations of the repository
// interfaces. They serve small single-process deployments and the test
// suite; the mongodb package is the production backend.
package memory

import (
	"context"
	"sort"
	"time"

	"shopperks/internal/repositories/interfaces"
	"shopperks/internal/utils"
)

// PassthroughRunner satisfies interfaces.TxRunner for the in-memory
// repositories, where every repository mutation is already atomic under its
// own mutex and there is no cross-record transaction to open.
type PassthroughRunner struct{}

func NewPassthroughRunner() interfaces.TxRunner {
	return PassthroughRunner{}
}

func (PassthroughRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// paginate sorts newest-first and applies the window from params. A nil
// params returns the whole set.
func paginate[T any](items []T, createdAt func(T) time.Time, params *utils.PaginationParams) []T {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})

	if params == nil {
		return items
	}

	skip := params.GetSkip()
	if skip >= len(items) {
		return nil
	}

	items = items[skip:]
	if limit := params.GetLimit(); limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}
