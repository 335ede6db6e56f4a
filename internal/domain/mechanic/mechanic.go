package mechanic

import (
	"fmt"

	"github.com/garagehq/shopapi/internal/domain/shared"
)

const (
	maxNameLength      = 120
	maxSpecialtyLength = 120
)

type Mechanic struct {
	id        uint
	name      string
	specialty string
}

func NewMechanic(name, specialty string) (*Mechanic, error) {
	m := &Mechanic{}
	if err := m.UpdateName(name); err != nil {
		return nil, err
	}
	if err := m.UpdateSpecialty(specialty); err != nil {
		return nil, err
	}
	return m, nil
}

func ReconstructMechanic(id uint, name, specialty string) (*Mechanic, error) {
	if id == 0 {
		return nil, fmt.Errorf("mechanic ID cannot be zero")
	}
	return &Mechanic{id: id, name: name, specialty: specialty}, nil
}

func (m *Mechanic) ID() uint {
	return m.id
}

func (m *Mechanic) Name() string {
	return m.name
}

func (m *Mechanic) Specialty() string {
	return m.specialty
}

// SetID sets the mechanic ID (only for persistence layer use)
func (m *Mechanic) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("mechanic ID is already set")
	}
	m.id = id
	return nil
}

func (m *Mechanic) UpdateName(name string) error {
	v, err := shared.ValidateText("name", name, 1, maxNameLength)
	if err != nil {
		return err
	}
	m.name = v
	return nil
}

// UpdateSpecialty sets the specialty; an empty value clears it.
func (m *Mechanic) UpdateSpecialty(specialty string) error {
	v, err := shared.ValidateText("specialty", specialty, 0, maxSpecialtyLength)
	if err != nil {
		return err
	}
	m.specialty = v
	return nil
}

// LeaderboardEntry is a mechanic with the number of distinct tickets it is
// primary on or a member of.
type LeaderboardEntry struct {
	Mechanic     *Mechanic
	TicketsCount int64
}
