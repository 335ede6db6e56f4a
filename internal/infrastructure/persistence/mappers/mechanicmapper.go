package mappers

import (
	"github.com/garagehq/shopapi/internal/domain/mechanic"
	"github.com/garagehq/shopapi/internal/infrastructure/persistence/models"
)

type MechanicMapper interface {
	ToModel(m *mechanic.Mechanic) *models.MechanicModel
	ToDomain(model *models.MechanicModel) (*mechanic.Mechanic, error)
	ToDomainList(models []models.MechanicModel) ([]*mechanic.Mechanic, error)
	RankToDomain(row *models.MechanicRankRow) (*mechanic.LeaderboardEntry, error)
}

type MechanicMapperImpl struct{}

func NewMechanicMapper() MechanicMapper {
	return &MechanicMapperImpl{}
}

func (m *MechanicMapperImpl) ToModel(mech *mechanic.Mechanic) *models.MechanicModel {
	return &models.MechanicModel{
		ID:        mech.ID(),
		Name:      mech.Name(),
		Specialty: mech.Specialty(),
	}
}

func (m *MechanicMapperImpl) ToDomain(model *models.MechanicModel) (*mechanic.Mechanic, error) {
	if model == nil {
		return nil, nil
	}
	return mechanic.ReconstructMechanic(model.ID, model.Name, model.Specialty)
}

func (m *MechanicMapperImpl) ToDomainList(list []models.MechanicModel) ([]*mechanic.Mechanic, error) {
	out := make([]*mechanic.Mechanic, 0, len(list))
	for i := range list {
		mech, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, mech)
	}
	return out, nil
}

func (m *MechanicMapperImpl) RankToDomain(row *models.MechanicRankRow) (*mechanic.LeaderboardEntry, error) {
	mech, err := mechanic.ReconstructMechanic(row.ID, row.Name, row.Specialty)
	if err != nil {
		return nil, err
	}
	return &mechanic.LeaderboardEntry{Mechanic: mech, TicketsCount: row.TicketsCount}, nil
}
