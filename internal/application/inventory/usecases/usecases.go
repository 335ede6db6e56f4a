package usecases

import (
	"context"
	"fmt"

	"github.com/garagehq/shopapi/internal/application/common"
	"github.com/garagehq/shopapi/internal/application/inventory/dto"
	"github.com/garagehq/shopapi/internal/domain/inventory"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// TicketDetacher drops a part from every ticket before it is deleted.
type TicketDetacher interface {
	DetachPart(ctx context.Context, partID uint) error
}

type CreatePartCommand struct {
	Name  string
	Price float64
}

type UpdatePartCommand struct {
	ID    uint
	Name  *string
	Price *float64
}

type ListPartsQuery struct {
	Page     int
	PageSize int
}

type ListPartsResult struct {
	Parts []*dto.PartDTO
	Total int64
}

type CreatePartExecutor interface {
	Execute(ctx context.Context, cmd CreatePartCommand) (*dto.PartDTO, error)
}

type GetPartExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.PartDTO, error)
}

type ListPartsExecutor interface {
	Execute(ctx context.Context, query ListPartsQuery) (*ListPartsResult, error)
}

type UpdatePartExecutor interface {
	Execute(ctx context.Context, cmd UpdatePartCommand) (*dto.PartDTO, error)
}

type DeletePartExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type CreatePartUseCase struct {
	repo      inventory.Repository
	sanitizer common.TextSanitizer
	logger    logger.Interface
}

func NewCreatePartUseCase(repo inventory.Repository, sanitizer common.TextSanitizer, logger logger.Interface) *CreatePartUseCase {
	return &CreatePartUseCase{repo: repo, sanitizer: sanitizer, logger: logger}
}

func (uc *CreatePartUseCase) Execute(ctx context.Context, cmd CreatePartCommand) (*dto.PartDTO, error) {
	p, err := inventory.NewPart(uc.sanitizer.StripTags(cmd.Name), cmd.Price)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Infow("part created successfully", "part_id", p.ID())

	return dto.ToPartDTO(p), nil
}

type GetPartUseCase struct {
	repo   inventory.Repository
	logger logger.Interface
}

func NewGetPartUseCase(repo inventory.Repository, logger logger.Interface) *GetPartUseCase {
	return &GetPartUseCase{repo: repo, logger: logger}
}

func (uc *GetPartUseCase) Execute(ctx context.Context, id uint) (*dto.PartDTO, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get part", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("part not found")
	}

	return dto.ToPartDTO(p), nil
}

type ListPartsUseCase struct {
	repo   inventory.Repository
	logger logger.Interface
}

func NewListPartsUseCase(repo inventory.Repository, logger logger.Interface) *ListPartsUseCase {
	return &ListPartsUseCase{repo: repo, logger: logger}
}

func (uc *ListPartsUseCase) Execute(ctx context.Context, query ListPartsQuery) (*ListPartsResult, error) {
	parts, total, err := uc.repo.List(ctx, inventory.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list parts", "error", err)
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	return &ListPartsResult{
		Parts: dto.ToPartDTOList(parts),
		Total: total,
	}, nil
}

type UpdatePartUseCase struct {
	repo      inventory.Repository
	sanitizer common.TextSanitizer
	logger    logger.Interface
}

func NewUpdatePartUseCase(repo inventory.Repository, sanitizer common.TextSanitizer, logger logger.Interface) *UpdatePartUseCase {
	return &UpdatePartUseCase{repo: repo, sanitizer: sanitizer, logger: logger}
}

func (uc *UpdatePartUseCase) Execute(ctx context.Context, cmd UpdatePartCommand) (*dto.PartDTO, error) {
	p, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("part not found")
	}

	if cmd.Name != nil {
		if err := p.UpdateName(uc.sanitizer.StripTags(*cmd.Name)); err != nil {
			return nil, err
		}
	}
	if cmd.Price != nil {
		if err := p.UpdatePrice(*cmd.Price); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Infow("part updated successfully", "part_id", p.ID())

	return dto.ToPartDTO(p), nil
}

type DeletePartUseCase struct {
	repo     inventory.Repository
	detacher TicketDetacher
	txMgr    db.Transactor
	logger   logger.Interface
}

func NewDeletePartUseCase(
	repo inventory.Repository,
	detacher TicketDetacher,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeletePartUseCase {
	return &DeletePartUseCase{
		repo:     repo,
		detacher: detacher,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *DeletePartUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get part: %w", err)
		}
		if p == nil {
			return errors.NewNotFoundError("part not found")
		}

		if err := uc.detacher.DetachPart(ctx, id); err != nil {
			return err
		}
		return uc.repo.Delete(ctx, id)
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete part", "part_id", id, "error", err)
		}
		return err
	}

	uc.logger.Infow("part deleted successfully", "part_id", id)
	return nil
}
