package usecases

import (
	"context"
	"fmt"
	"html"

	"github.com/garagehq/shopapi/internal/application/ticket/dto"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// detailsLoader builds ticket representations from repository details.
type detailsLoader struct {
	repo     ticket.Repository
	renderer DescriptionRenderer
	logger   logger.Interface
}

func newDetailsLoader(repo ticket.Repository, renderer DescriptionRenderer, logger logger.Interface) *detailsLoader {
	return &detailsLoader{repo: repo, renderer: renderer, logger: logger}
}

func (l *detailsLoader) load(ctx context.Context, ids []uint) ([]*dto.TicketDTO, error) {
	details, err := l.repo.GetDetails(ctx, ids)
	if err != nil {
		l.logger.Errorw("failed to load ticket details", "error", err)
		return nil, fmt.Errorf("failed to load ticket details: %w", err)
	}

	out := make([]*dto.TicketDTO, 0, len(details))
	for _, d := range details {
		out = append(out, dto.ToTicketDTO(d, l.render(d.Ticket)))
	}
	return out, nil
}

func (l *detailsLoader) loadOne(ctx context.Context, id uint) (*dto.TicketDTO, error) {
	list, err := l.load(ctx, []uint{id})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return list[0], nil
}

func (l *detailsLoader) render(t *ticket.Ticket) string {
	out, err := l.renderer.ToHTMLSanitized(t.Description())
	if err != nil {
		l.logger.Warnw("failed to render ticket description", "ticket_id", t.ID(), "error", err)
		return html.EscapeString(t.Description())
	}
	return out
}

// getTicket returns the ticket or a not found error.
func getTicket(ctx context.Context, repo ticket.Repository, id uint) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}
