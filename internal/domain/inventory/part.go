package inventory

import (
	"fmt"
	"math"

	"github.com/garagehq/shopapi/internal/domain/shared"
	"github.com/garagehq/shopapi/internal/shared/errors"
)

const maxNameLength = 120

// Part is an inventory item that can be attached to service tickets.
type Part struct {
	id    uint
	name  string
	price float64
}

func NewPart(name string, price float64) (*Part, error) {
	p := &Part{}
	if err := p.UpdateName(name); err != nil {
		return nil, err
	}
	if err := p.UpdatePrice(price); err != nil {
		return nil, err
	}
	return p, nil
}

func ReconstructPart(id uint, name string, price float64) (*Part, error) {
	if id == 0 {
		return nil, fmt.Errorf("part ID cannot be zero")
	}
	return &Part{id: id, name: name, price: price}, nil
}

func (p *Part) ID() uint {
	return p.id
}

func (p *Part) Name() string {
	return p.name
}

func (p *Part) Price() float64 {
	return p.price
}

// SetID sets the part ID (only for persistence layer use)
func (p *Part) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("part ID is already set")
	}
	p.id = id
	return nil
}

func (p *Part) UpdateName(name string) error {
	v, err := shared.ValidateText("name", name, 1, maxNameLength)
	if err != nil {
		return err
	}
	p.name = v
	return nil
}

func (p *Part) UpdatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return errors.NewValidationError("price must be greater than or equal to 0")
	}
	p.price = price
	return nil
}
