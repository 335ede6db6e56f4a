package mappers

import (
	"github.com/garagehq/shopapi/internal/domain/ticket"
	vo "github.com/garagehq/shopapi/internal/domain/ticket/valueobjects"
	"github.com/garagehq/shopapi/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.ServiceTicketModel
	ToDomain(model *models.ServiceTicketModel) (*ticket.Ticket, error)
	ToDomainList(models []models.ServiceTicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.ServiceTicketModel {
	return &models.ServiceTicketModel{
		ID:                t.ID(),
		Description:       t.Description(),
		Status:            t.Status().String(),
		UserID:            t.UserID(),
		PrimaryMechanicID: t.PrimaryMechanicID(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.ServiceTicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.Description,
		vo.TicketStatus(model.Status),
		model.UserID,
		model.PrimaryMechanicID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapperImpl) ToDomainList(list []models.ServiceTicketModel) ([]*ticket.Ticket, error) {
	out := make([]*ticket.Ticket, 0, len(list))
	for i := range list {
		t, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
