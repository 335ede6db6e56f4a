package models

import "github.com/garagehq/shopapi/internal/shared/constants"

type MechanicModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:120;index"`
	Specialty string `gorm:"not null;default:'';size:120"`
}

func (MechanicModel) TableName() string {
	return constants.TableMechanics
}

// MechanicRankRow is one row of the leaderboard query.
type MechanicRankRow struct {
	ID           uint
	Name         string
	Specialty    string
	TicketsCount int64
}
