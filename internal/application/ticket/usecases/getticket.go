package usecases

import (
	"context"

	"github.com/garagehq/shopapi/internal/application/ticket/dto"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

type GetTicketUseCase struct {
	loader *detailsLoader
}

func NewGetTicketUseCase(repo ticket.Repository, renderer DescriptionRenderer, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{loader: newDetailsLoader(repo, renderer, logger)}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, id uint) (*dto.TicketDTO, error) {
	return uc.loader.loadOne(ctx, id)
}
