package interfaces

import "context"

// TxRunner executes fn atomically with respect to the backing store. The
// Mongo implementation wraps fn in a session transaction; the in-memory
// implementation just calls it. Either way a failure inside fn must leave
// no partial writes visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}
