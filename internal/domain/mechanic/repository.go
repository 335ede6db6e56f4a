package mechanic

import "context"

// Repository defines mechanic persistence. Get methods return (nil, nil)
// when no row matches.
type Repository interface {
	Create(ctx context.Context, m *Mechanic) error
	GetByID(ctx context.Context, id uint) (*Mechanic, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Mechanic, error)
	Update(ctx context.Context, m *Mechanic) error
	Delete(ctx context.Context, id uint) error
	// List orders by name, then id.
	List(ctx context.Context, filter ListFilter) ([]*Mechanic, int64, error)
	// FindExistingIDs returns the subset of ids that have a row.
	FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
	// Leaderboard ranks by ticket count descending, then name ascending.
	Leaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
}

type ListFilter struct {
	Page     int
	PageSize int
}
