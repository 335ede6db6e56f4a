package dto

import (
	"time"

	"github.com/garagehq/shopapi/internal/domain/inventory"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	"github.com/garagehq/shopapi/internal/shared/mapper"
)

// TicketDTO is the ticket representation with its owner, mechanics and
// parts nested.
type TicketDTO struct {
	ID                uint           `json:"id"`
	Description       string         `json:"description"`
	DescriptionHTML   string         `json:"description_html"`
	Status            string         `json:"status"`
	UserID            uint           `json:"user_id"`
	PrimaryMechanicID *uint          `json:"primary_mechanic_id"`
	User              *OwnerDTO      `json:"user"`
	PrimaryMechanic   *MechanicDTO   `json:"primary_mechanic"`
	Mechanics         []*MechanicDTO `json:"mechanics"`
	Parts             []*PartDTO     `json:"parts"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type OwnerDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MechanicDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type PartDTO struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ToTicketDTO maps d; descriptionHTML is the rendered description.
func ToTicketDTO(d *ticket.Details, descriptionHTML string) *TicketDTO {
	if d == nil || d.Ticket == nil {
		return nil
	}
	t := d.Ticket

	out := &TicketDTO{
		ID:                t.ID(),
		Description:       t.Description(),
		DescriptionHTML:   descriptionHTML,
		Status:            t.Status().String(),
		UserID:            t.UserID(),
		PrimaryMechanicID: t.PrimaryMechanicID(),
		PrimaryMechanic:   toMechanicDTO(d.PrimaryMechanic),
		Mechanics:         mapper.MapSlice(d.Mechanics, toMechanicDTO),
		Parts:             mapper.MapSlice(d.Parts, toPartDTO),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
	if d.Owner != nil {
		out.User = &OwnerDTO{
			ID:    d.Owner.ID(),
			Name:  d.Owner.Name(),
			Email: d.Owner.Email().String(),
		}
	}
	return out
}

func toMechanicDTO(m *mechanic.Mechanic) *MechanicDTO {
	if m == nil {
		return nil
	}
	return &MechanicDTO{ID: m.ID(), Name: m.Name(), Specialty: m.Specialty()}
}

func toPartDTO(p *inventory.Part) *PartDTO {
	if p == nil {
		return nil
	}
	return &PartDTO{ID: p.ID(), Name: p.Name(), Price: p.Price()}
}
