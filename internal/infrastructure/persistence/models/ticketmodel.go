package models

import (
	"time"

	"github.com/garagehq/shopapi/internal/shared/constants"
)

// ServiceTicketModel has no gorm associations; the mechanics and parts sets
// live in the association tables below and are managed by the repository.
type ServiceTicketModel struct {
	ID                uint   `gorm:"primarykey"`
	Description       string `gorm:"not null;size:255"`
	Status            string `gorm:"not null;default:open;size:20;index"`
	UserID            uint   `gorm:"not null;index"`
	PrimaryMechanicID *uint  `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ServiceTicketModel) TableName() string {
	return constants.TableServiceTickets
}

// TicketMechanicModel is a ticket to mechanic membership row.
type TicketMechanicModel struct {
	ServiceTicketID uint `gorm:"primaryKey;autoIncrement:false"`
	MechanicID      uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (TicketMechanicModel) TableName() string {
	return constants.TableTicketMechanics
}

// InventoryTicketModel is a ticket to part row.
type InventoryTicketModel struct {
	ServiceTicketID uint `gorm:"primaryKey;autoIncrement:false"`
	InventoryID     uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (InventoryTicketModel) TableName() string {
	return constants.TableInventoryTickets
}
