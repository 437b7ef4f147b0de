package mongodb

import (
	"context"

	"shopperks/internal/repositories/interfaces"
	"shopperks/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
)

type sessionRunner struct {
	db *database.MongoDB
}

// NewSessionRunner adapts the MongoDB session API to the interfaces.TxRunner
// contract. The approve path relies on this to keep the status write and
// the ledger update in one causally-consistent unit.
func NewSessionRunner(db *database.MongoDB) interfaces.TxRunner {
	return &sessionRunner{db: db}
}

func (r *sessionRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := r.db.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}
