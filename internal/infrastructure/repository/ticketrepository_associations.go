package repository

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm/clause"

	"github.com/garagehq/shopapi/internal/domain/inventory"
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/domain/ticket"
	"github.com/garagehq/shopapi/internal/domain/user"
	"github.com/garagehq/shopapi/internal/infrastructure/persistence/models"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/utils/setutil"
)

const associationBatchSize = 100

func (r *TicketRepository) AddMechanics(ctx context.Context, ticketID uint, mechanicIDs []uint) error {
	if len(mechanicIDs) == 0 {
		return nil
	}

	rows := make([]models.TicketMechanicModel, 0, len(mechanicIDs))
	for _, id := range setutil.NewUintSetFrom(mechanicIDs).ToSlice() {
		rows = append(rows, models.TicketMechanicModel{ServiceTicketID: ticketID, MechanicID: id})
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, associationBatchSize).Error; err != nil {
		r.logger.Errorw("failed to add mechanics to ticket", "ticket_id", ticketID, "error", err)
		return fmt.Errorf("failed to add mechanics to ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) RemoveMechanics(ctx context.Context, ticketID uint, mechanicIDs []uint) error {
	if len(mechanicIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("service_ticket_id = ? AND mechanic_id IN ?", ticketID, mechanicIDs).
		Delete(&models.TicketMechanicModel{}).Error; err != nil {
		r.logger.Errorw("failed to remove mechanics from ticket", "ticket_id", ticketID, "error", err)
		return fmt.Errorf("failed to remove mechanics from ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) AddPart(ctx context.Context, ticketID, partID uint) error {
	row := models.InventoryTicketModel{ServiceTicketID: ticketID, InventoryID: partID}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		r.logger.Errorw("failed to add part to ticket", "ticket_id", ticketID, "part_id", partID, "error", err)
		return fmt.Errorf("failed to add part to ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) RemovePart(ctx context.Context, ticketID, partID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("service_ticket_id = ? AND inventory_id = ?", ticketID, partID).
		Delete(&models.InventoryTicketModel{}).Error; err != nil {
		r.logger.Errorw("failed to remove part from ticket", "ticket_id", ticketID, "part_id", partID, "error", err)
		return fmt.Errorf("failed to remove part from ticket: %w", err)
	}

	return nil
}

// GetDetails loads tickets plus everything they reference with one query
// per table.
func (r *TicketRepository) GetDetails(ctx context.Context, ids []uint) ([]*ticket.Details, error) {
	if len(ids) == 0 {
		return []*ticket.Details{}, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var ticketRows []models.ServiceTicketModel
	if err := tx.Where("id IN ?", ids).Find(&ticketRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}
	if len(ticketRows) == 0 {
		return []*ticket.Details{}, nil
	}

	foundIDs := make([]uint, 0, len(ticketRows))
	ownerIDs := setutil.NewUintSet()
	mechanicIDs := setutil.NewUintSet()
	for i := range ticketRows {
		foundIDs = append(foundIDs, ticketRows[i].ID)
		ownerIDs.Add(ticketRows[i].UserID)
		if ticketRows[i].PrimaryMechanicID != nil {
			mechanicIDs.Add(*ticketRows[i].PrimaryMechanicID)
		}
	}

	var memberRows []models.TicketMechanicModel
	if err := tx.Where("service_ticket_id IN ?", foundIDs).Find(&memberRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket mechanics: %w", err)
	}
	for _, row := range memberRows {
		mechanicIDs.Add(row.MechanicID)
	}

	var partRows []models.InventoryTicketModel
	if err := tx.Where("service_ticket_id IN ?", foundIDs).Find(&partRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket parts: %w", err)
	}
	partIDs := setutil.NewUintSet()
	for _, row := range partRows {
		partIDs.Add(row.InventoryID)
	}

	owners, err := r.loadUsers(ctx, ownerIDs.ToSlice())
	if err != nil {
		return nil, err
	}
	mechanics, err := r.loadMechanics(ctx, mechanicIDs.ToSlice())
	if err != nil {
		return nil, err
	}
	parts, err := r.loadParts(ctx, partIDs.ToSlice())
	if err != nil {
		return nil, err
	}

	membersByTicket := make(map[uint][]uint)
	for _, row := range memberRows {
		membersByTicket[row.ServiceTicketID] = append(membersByTicket[row.ServiceTicketID], row.MechanicID)
	}
	partsByTicket := make(map[uint][]uint)
	for _, row := range partRows {
		partsByTicket[row.ServiceTicketID] = append(partsByTicket[row.ServiceTicketID], row.InventoryID)
	}

	byID := make(map[uint]*ticket.Details, len(ticketRows))
	for i := range ticketRows {
		t, err := r.mapper.ToDomain(&ticketRows[i])
		if err != nil {
			return nil, err
		}
		d := &ticket.Details{
			Ticket:    t,
			Owner:     owners[t.UserID()],
			Mechanics: pickMechanics(mechanics, membersByTicket[t.ID()]),
			Parts:     pickParts(parts, partsByTicket[t.ID()]),
		}
		if pid := t.PrimaryMechanicID(); pid != nil {
			d.PrimaryMechanic = mechanics[*pid]
		}
		byID[t.ID()] = d
	}

	out := make([]*ticket.Details, 0, len(byID))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
			delete(byID, id)
		}
	}
	return out, nil
}

func (r *TicketRepository) loadUsers(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	out := make(map[uint]*user.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket owners: %w", err)
	}
	list, err := r.userMapper.ToDomainList(rows)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		out[u.ID()] = u
	}
	return out, nil
}

func (r *TicketRepository) loadMechanics(ctx context.Context, ids []uint) (map[uint]*mechanic.Mechanic, error) {
	out := make(map[uint]*mechanic.Mechanic, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.MechanicModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket mechanics: %w", err)
	}
	list, err := r.mechanicMapper.ToDomainList(rows)
	if err != nil {
		return nil, err
	}
	for _, m := range list {
		out[m.ID()] = m
	}
	return out, nil
}

func (r *TicketRepository) loadParts(ctx context.Context, ids []uint) (map[uint]*inventory.Part, error) {
	out := make(map[uint]*inventory.Part, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.InventoryModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket parts: %w", err)
	}
	list, err := r.partMapper.ToDomainList(rows)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		out[p.ID()] = p
	}
	return out, nil
}

// pickMechanics returns the mechanics of ids ordered by name then id.
func pickMechanics(all map[uint]*mechanic.Mechanic, ids []uint) []*mechanic.Mechanic {
	out := make([]*mechanic.Mechanic, 0, len(ids))
	for _, id := range ids {
		if m, ok := all[id]; ok {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name() != out[j].Name() {
			return out[i].Name() < out[j].Name()
		}
		return out[i].ID() < out[j].ID()
	})
	return out
}

// pickParts returns the parts of ids ordered by id.
func pickParts(all map[uint]*inventory.Part, ids []uint) []*inventory.Part {
	out := make([]*inventory.Part, 0, len(ids))
	for _, id := range ids {
		if p, ok := all[id]; ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID() < out[j].ID()
	})
	return out
}
