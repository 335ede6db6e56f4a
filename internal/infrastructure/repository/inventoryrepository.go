package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/garagehq/shopapi/internal/domain/inventory"
	"github.com/garagehq/shopapi/internal/infrastructure/persistence/mappers"
	"github.com/garagehq/shopapi/internal/infrastructure/persistence/models"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

type InventoryRepository struct {
	db     *gorm.DB
	mapper mappers.InventoryMapper
	logger logger.Interface
}

func NewInventoryRepository(gdb *gorm.DB, log logger.Interface) *InventoryRepository {
	return &InventoryRepository{
		db:     gdb,
		mapper: mappers.NewInventoryMapper(),
		logger: log,
	}
}

var _ inventory.Repository = (*InventoryRepository)(nil)

func (r *InventoryRepository) Create(ctx context.Context, p *inventory.Part) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create part", "error", err)
		return fmt.Errorf("failed to create part: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *InventoryRepository) GetByID(ctx context.Context, id uint) (*inventory.Part, error) {
	var model models.InventoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InventoryRepository) Update(ctx context.Context, p *inventory.Part) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	// price 0 is a valid value, so both columns are always written
	if err := tx.Model(&models.InventoryModel{}).
		Where("id = ?", model.ID).
		Select("name", "price").
		Updates(model).Error; err != nil {
		r.logger.Errorw("failed to update part", "part_id", model.ID, "error", err)
		return fmt.Errorf("failed to update part: %w", err)
	}

	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.InventoryModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete part", "part_id", id, "error", err)
		return fmt.Errorf("failed to delete part: %w", err)
	}

	return nil
}

func (r *InventoryRepository) List(ctx context.Context, filter inventory.ListFilter) ([]*inventory.Part, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.InventoryModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count parts: %w", err)
	}

	var list []models.InventoryModel
	q := paginate(tx.Model(&models.InventoryModel{}).Order("name ASC, id ASC"), filter.Page, filter.PageSize)
	if err := q.Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list parts: %w", err)
	}

	parts, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return parts, total, nil
}
