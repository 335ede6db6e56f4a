package dto

import (
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/shared/mapper"
)

type MechanicDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type LeaderboardEntryDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Specialty    string `json:"specialty"`
	TicketsCount int64  `json:"tickets_count"`
}

func ToMechanicDTO(m *mechanic.Mechanic) *MechanicDTO {
	if m == nil {
		return nil
	}
	return &MechanicDTO{
		ID:        m.ID(),
		Name:      m.Name(),
		Specialty: m.Specialty(),
	}
}

func ToMechanicDTOList(list []*mechanic.Mechanic) []*MechanicDTO {
	return mapper.MapSlice(list, ToMechanicDTO)
}

func ToLeaderboardDTOList(entries []*mechanic.LeaderboardEntry) []*LeaderboardEntryDTO {
	return mapper.MapSlice(entries, func(e *mechanic.LeaderboardEntry) *LeaderboardEntryDTO {
		return &LeaderboardEntryDTO{
			ID:           e.Mechanic.ID(),
			Name:         e.Mechanic.Name(),
			Specialty:    e.Mechanic.Specialty(),
			TicketsCount: e.TicketsCount,
		}
	})
}
