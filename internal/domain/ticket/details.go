package ticket

import (
	"github.com/garagehq/shopapi/internal/domain/inventory"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/domain/user"
)

// Details is a ticket together with the rows it references.
type Details struct {
	Ticket          *Ticket
	Owner           *user.User
	PrimaryMechanic *mechanic.Mechanic
	Mechanics       []*mechanic.Mechanic
	Parts           []*inventory.Part
}
