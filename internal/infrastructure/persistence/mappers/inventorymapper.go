package mappers

import (
	"github.com/garagehq/shopapi/internal/domain/inventory"
	"github.com/garagehq/shopapi/internal/infrastructure/persistence/models"
)

type InventoryMapper interface {
	ToModel(p *inventory.Part) *models.InventoryModel
	ToDomain(model *models.InventoryModel) (*inventory.Part, error)
	ToDomainList(models []models.InventoryModel) ([]*inventory.Part, error)
}

type InventoryMapperImpl struct{}

func NewInventoryMapper() InventoryMapper {
	return &InventoryMapperImpl{}
}

func (m *InventoryMapperImpl) ToModel(p *inventory.Part) *models.InventoryModel {
	return &models.InventoryModel{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

func (m *InventoryMapperImpl) ToDomain(model *models.InventoryModel) (*inventory.Part, error) {
	if model == nil {
		return nil, nil
	}
	return inventory.ReconstructPart(model.ID, model.Name, model.Price)
}

func (m *InventoryMapperImpl) ToDomainList(list []models.InventoryModel) ([]*inventory.Part, error) {
	out := make([]*inventory.Part, 0, len(list))
	for i := range list {
		p, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
