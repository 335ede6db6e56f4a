package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/ticket/dto"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// ListTicketsQuery lists every ticket, or only those of OwnerID when set.
type ListTicketsQuery struct {
	OwnerID  *uint
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	repo   ticket.Repository
	loader *detailsLoader
	logger logger.Interface
}

func NewListTicketsUseCase(repo ticket.Repository, renderer DescriptionRenderer, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		repo:   repo,
		loader: newDetailsLoader(repo, renderer, logger),
		logger: logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	tickets, total, err := uc.repo.List(ctx, ticket.ListFilter{
		UserID:   query.OwnerID,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID())
	}

	list, err := uc.loader.load(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &ListTicketsResult{Tickets: list, Total: total}, nil
}
