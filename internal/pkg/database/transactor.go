package database

import "context"

// Transactor runs fn inside a single store transaction. Repositories called
// with the ctx handed to fn take part in that transaction; fn returning an
// error rolls everything back.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
