package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/infrastructure/persistence/mappers"
	"github.com/garagehq/shopapi/internal/infrastructure/persistence/models"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// leaderboardSQL counts each ticket once per mechanic whether the mechanic
// is its primary, a member, or both. Mechanics without tickets rank with 0.
const leaderboardSQL = `
SELECT m.id, m.name, m.specialty, COUNT(DISTINCT w.ticket_id) AS tickets_count
FROM mechanics m
LEFT JOIN (
	SELECT id AS ticket_id, primary_mechanic_id AS mechanic_id
	FROM service_tickets
	WHERE primary_mechanic_id IS NOT NULL
	UNION
	SELECT service_ticket_id AS ticket_id, mechanic_id
	FROM ticket_mechanics
) w ON w.mechanic_id = m.id
GROUP BY m.id, m.name, m.specialty
ORDER BY tickets_count DESC, m.name ASC, m.id ASC
LIMIT ?`

type MechanicRepository struct {
	db     *gorm.DB
	mapper mappers.MechanicMapper
	logger logger.Interface
}

func NewMechanicRepository(gdb *gorm.DB, log logger.Interface) *MechanicRepository {
	return &MechanicRepository{
		db:     gdb,
		mapper: mappers.NewMechanicMapper(),
		logger: log,
	}
}

var _ mechanic.Repository = (*MechanicRepository)(nil)

func (r *MechanicRepository) Create(ctx context.Context, m *mechanic.Mechanic) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create mechanic", "error", err)
		return fmt.Errorf("failed to create mechanic: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MechanicRepository) GetByID(ctx context.Context, id uint) (*mechanic.Mechanic, error) {
	var model models.MechanicModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mechanic: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MechanicRepository) GetByIDs(ctx context.Context, ids []uint) ([]*mechanic.Mechanic, error) {
	if len(ids) == 0 {
		return []*mechanic.Mechanic{}, nil
	}

	var list []models.MechanicModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Order("name ASC, id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to get mechanics: %w", err)
	}

	return r.mapper.ToDomainList(list)
}

func (r *MechanicRepository) Update(ctx context.Context, m *mechanic.Mechanic) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select keeps an empty specialty instead of skipping the zero value.
	if err := tx.Model(&models.MechanicModel{}).
		Where("id = ?", model.ID).
		Select("name", "specialty").
		Updates(model).Error; err != nil {
		r.logger.Errorw("failed to update mechanic", "mechanic_id", model.ID, "error", err)
		return fmt.Errorf("failed to update mechanic: %w", err)
	}

	return nil
}

func (r *MechanicRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.MechanicModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete mechanic", "mechanic_id", id, "error", err)
		return fmt.Errorf("failed to delete mechanic: %w", err)
	}

	return nil
}

func (r *MechanicRepository) List(ctx context.Context, filter mechanic.ListFilter) ([]*mechanic.Mechanic, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.MechanicModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count mechanics: %w", err)
	}

	var list []models.MechanicModel
	q := paginate(tx.Model(&models.MechanicModel{}).Order("name ASC, id ASC"), filter.Page, filter.PageSize)
	if err := q.Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list mechanics: %w", err)
	}

	mechanics, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return mechanics, total, nil
}

func (r *MechanicRepository) FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	found := []uint{}
	if len(ids) == 0 {
		return found, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.MechanicModel{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve mechanic ids: %w", err)
	}

	return found, nil
}

func (r *MechanicRepository) Leaderboard(ctx context.Context, limit int) ([]*mechanic.LeaderboardEntry, error) {
	var rows []models.MechanicRankRow
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Raw(leaderboardSQL, limit).Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to rank mechanics", "error", err)
		return nil, fmt.Errorf("failed to rank mechanics: %w", err)
	}

	entries := make([]*mechanic.LeaderboardEntry, 0, len(rows))
	for i := range rows {
		entry, err := r.mapper.RankToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
