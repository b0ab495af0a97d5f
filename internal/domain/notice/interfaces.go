package notice

import "context"

// Repository provides read-only access to the notice board. There is no write
// path.
type Repository interface {
	List(ctx context.Context) ([]Notice, error)
}
