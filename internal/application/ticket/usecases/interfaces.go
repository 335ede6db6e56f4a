package usecases

import (
	"context"

	"github.com/garagehq/shopapi/internal/application/ticket/dto"
)

type DescriptionRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type StatusMailer interface {
	SendTicketStatusEmail(to, name string, ticketID uint, status string) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type EditMechanicsExecutor interface {
	Execute(ctx context.Context, cmd EditMechanicsCommand) (*dto.TicketDTO, error)
}

type AddPartExecutor interface {
	Execute(ctx context.Context, cmd PartCommand) (*dto.TicketDTO, error)
}

type RemovePartExecutor interface {
	Execute(ctx context.Context, cmd PartCommand) (*dto.TicketDTO, error)
}
