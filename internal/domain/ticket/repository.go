package ticket

import "context"

// Repository defines service ticket persistence and the association tables
// linking tickets to mechanics and parts. Get methods return (nil, nil)
// when no row matches.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket and its association rows.
	Delete(ctx context.Context, id uint) error
	// List orders by id.
	List(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error)

	// GetDetails loads the tickets with owner, primary mechanic, mechanics
	// and parts, keeping the order of ids. Unknown ids are skipped.
	GetDetails(ctx context.Context, ids []uint) ([]*Details, error)

	// AddMechanics inserts membership rows, ignoring existing pairs.
	AddMechanics(ctx context.Context, ticketID uint, mechanicIDs []uint) error
	// RemoveMechanics deletes membership rows; non-members are ignored.
	RemoveMechanics(ctx context.Context, ticketID uint, mechanicIDs []uint) error
	// AddPart inserts the part row unless it is already attached.
	AddPart(ctx context.Context, ticketID, partID uint) error
	RemovePart(ctx context.Context, ticketID, partID uint) error

	// DeleteByOwner removes every ticket of userID with its association rows.
	DeleteByOwner(ctx context.Context, userID uint) error
	// DetachMechanic drops mechanicID from every ticket, clearing it as
	// primary mechanic too.
	DetachMechanic(ctx context.Context, mechanicID uint) error
	// DetachPart drops partID from every ticket.
	DetachPart(ctx context.Context, partID uint) error
}

type ListFilter struct {
	UserID   *uint
	Page     int
	PageSize int
}
