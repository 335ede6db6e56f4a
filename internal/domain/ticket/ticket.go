package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/garagehq/shopapi/internal/domain/shared"
	vo "github.com/garagehq/shopapi/internal/domain/ticket/valueobjects"
	"github.com/garagehq/shopapi/internal/shared/errors"
)

const maxDescriptionLength = 255

// Ticket is a service ticket owned by one user. The primary mechanic is
// tracked separately from the mechanics working on the ticket.
type Ticket struct {
	id                uint
	description       string
	status            vo.TicketStatus
	userID            uint
	primaryMechanicID *uint
	createdAt         time.Time
	updatedAt         time.Time
}

func NewTicket(description string, userID uint) (*Ticket, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user_id is required")
	}
	desc, err := shared.ValidateText("description", description, 1, maxDescriptionLength)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Ticket{
		description: desc,
		status:      vo.StatusOpen,
		userID:      userID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	description string,
	status vo.TicketStatus,
	userID uint,
	primaryMechanicID *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("ticket %d has no owner", id)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	return &Ticket{
		id:                id,
		description:       description,
		status:            status,
		userID:            userID,
		primaryMechanicID: primaryMechanicID,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) PrimaryMechanicID() *uint {
	return t.primaryMechanicID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID sets the ticket ID (only for persistence layer use)
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	t.id = id
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	desc, err := shared.ValidateText("description", description, 1, maxDescriptionLength)
	if err != nil {
		return err
	}
	t.description = desc
	t.touch()
	return nil
}

// ChangeStatus sets a new status and reports whether it differs from the
// current one.
func (t *Ticket) ChangeStatus(status vo.TicketStatus) (bool, error) {
	if !status.IsValid() {
		allowed := make([]string, 0, len(vo.AllowedStatuses()))
		for _, s := range vo.AllowedStatuses() {
			allowed = append(allowed, s.String())
		}
		return false, errors.NewValidationError(
			fmt.Sprintf("invalid status %q", status),
			"status must be one of ["+strings.Join(allowed, " ")+"]",
		)
	}
	if t.status == status {
		return false, nil
	}
	t.status = status
	t.touch()
	return true, nil
}

// AssignPrimaryMechanic sets the primary mechanic; nil clears it.
func (t *Ticket) AssignPrimaryMechanic(mechanicID *uint) {
	if mechanicID != nil && *mechanicID == 0 {
		mechanicID = nil
	}
	t.primaryMechanicID = mechanicID
	t.touch()
}

// IsOwnedBy reports whether userID owns the ticket.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.userID == userID
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now().UTC()
}
