package models

import "github.com/garagehq/shopapi/internal/shared/constants"

type InventoryModel struct {
	ID    uint    `gorm:"primarykey"`
	Name  string  `gorm:"not null;size:120;index"`
	Price float64 `gorm:"not null;default:0"`
}

func (InventoryModel) TableName() string {
	return constants.TableInventory
}
