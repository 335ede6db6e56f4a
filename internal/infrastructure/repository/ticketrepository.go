package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/garagehq/shopapi/internal/domain/ticket"
	"github.com/garagehq/shopapi/internal/infrastructure/persistence/mappers"
	"github.com/garagehq/shopapi/internal/infrastructure/persistence/models"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// TicketRepository persists service tickets. The mechanics and parts sets
// are kept in association tables and loaded in batches, never through gorm
// associations.
type TicketRepository struct {
	db             *gorm.DB
	mapper         mappers.TicketMapper
	userMapper     mappers.UserMapper
	mechanicMapper mappers.MechanicMapper
	partMapper     mappers.InventoryMapper
	logger         logger.Interface
}

func NewTicketRepository(gdb *gorm.DB, log logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:             gdb,
		mapper:         mappers.NewTicketMapper(),
		userMapper:     mappers.NewUserMapper(),
		mechanicMapper: mappers.NewMechanicMapper(),
		partMapper:     mappers.NewInventoryMapper(),
		logger:         log,
	}
}

var _ ticket.Repository = (*TicketRepository)(nil)

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.ServiceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// primary_mechanic_id is selected explicitly so a cleared value is written as NULL
	if err := tx.Model(&models.ServiceTicketModel{}).
		Where("id = ?", model.ID).
		Select("description", "status", "primary_mechanic_id", "updated_at").
		Updates(model).Error; err != nil {
		r.logger.Errorw("failed to update ticket", "ticket_id", model.ID, "error", err)
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Transaction(func(tx *gorm.DB) error {
		if err := deleteTicketRows(tx, []uint{id}); err != nil {
			return err
		}
		return tx.Delete(&models.ServiceTicketModel{}, id).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete ticket", "ticket_id", id, "error", err)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	base := func() *gorm.DB {
		q := tx.Model(&models.ServiceTicketModel{})
		if filter.UserID != nil {
			q = q.Where("user_id = ?", *filter.UserID)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var list []models.ServiceTicketModel
	if err := paginate(base().Order("id ASC"), filter.Page, filter.PageSize).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) DeleteByOwner(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.ServiceTicketModel{}).
			Where("user_id = ?", userID).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := deleteTicketRows(tx, ids); err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.ServiceTicketModel{}).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete tickets of user", "user_id", userID, "error", err)
		return fmt.Errorf("failed to delete tickets of user: %w", err)
	}

	return nil
}

func (r *TicketRepository) DetachMechanic(ctx context.Context, mechanicID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mechanic_id = ?", mechanicID).
			Delete(&models.TicketMechanicModel{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.ServiceTicketModel{}).
			Where("primary_mechanic_id = ?", mechanicID).
			Update("primary_mechanic_id", gorm.Expr("NULL")).Error
	})
	if err != nil {
		r.logger.Errorw("failed to detach mechanic", "mechanic_id", mechanicID, "error", err)
		return fmt.Errorf("failed to detach mechanic: %w", err)
	}

	return nil
}

func (r *TicketRepository) DetachPart(ctx context.Context, partID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("inventory_id = ?", partID).
		Delete(&models.InventoryTicketModel{}).Error; err != nil {
		r.logger.Errorw("failed to detach part", "part_id", partID, "error", err)
		return fmt.Errorf("failed to detach part: %w", err)
	}

	return nil
}

func deleteTicketRows(tx *gorm.DB, ticketIDs []uint) error {
	if err := tx.Where("service_ticket_id IN ?", ticketIDs).
		Delete(&models.TicketMechanicModel{}).Error; err != nil {
		return err
	}
	return tx.Where("service_ticket_id IN ?", ticketIDs).
		Delete(&models.InventoryTicketModel{}).Error
}
