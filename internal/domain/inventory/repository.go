package inventory

import "context"

// Repository defines part persistence. Get methods return (nil, nil) when
// no row matches.
type Repository interface {
	Create(ctx context.Context, p *Part) error
	GetByID(ctx context.Context, id uint) (*Part, error)
	Update(ctx context.Context, p *Part) error
	Delete(ctx context.Context, id uint) error
	// List orders by name, then id.
	List(ctx context.Context, filter ListFilter) ([]*Part, int64, error)
}

type ListFilter struct {
	Page     int
	PageSize int
}
