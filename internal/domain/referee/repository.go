package referee

import "context"

// Repository describes referee persistence needs from use cases.
type Repository interface {
	ListActive(ctx context.Context) ([]Referee, error)
	GetByID(ctx context.Context, refereeID string) (Referee, bool, error)
	Upsert(ctx context.Context, item Referee) error
}
