package dto

import (
	"github.com/garagehq/shopapi/internal/domain/inventory"
	"github.com/garagehq/shopapi/internal/shared/mapper"
)

type PartDTO struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func ToPartDTO(p *inventory.Part) *PartDTO {
	if p == nil {
		return nil
	}
	return &PartDTO{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

func ToPartDTOList(parts []*inventory.Part) []*PartDTO {
	return mapper.MapSlice(parts, ToPartDTO)
}
