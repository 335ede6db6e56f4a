package usecases

import (
	"context"

	"github.com/garagehq/shopapi/internal/domain/mechanic"
)

type mockMechanicRepository struct {
	CreateFunc          func(ctx context.Context, m *mechanic.Mechanic) error
	GetByIDFunc         func(ctx context.Context, id uint) (*mechanic.Mechanic, error)
	UpdateFunc          func(ctx context.Context, m *mechanic.Mechanic) error
	DeleteFunc          func(ctx context.Context, id uint) error
	ListFunc            func(ctx context.Context, filter mechanic.ListFilter) ([]*mechanic.Mechanic, int64, error)
	FindExistingIDsFunc func(ctx context.Context, ids []uint) ([]uint, error)
	LeaderboardFunc     func(ctx context.Context, limit int) ([]*mechanic.LeaderboardEntry, error)
}

func (m *mockMechanicRepository) Create(ctx context.Context, mech *mechanic.Mechanic) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mech)
	}
	return mech.SetID(1)
}

func (m *mockMechanicRepository) GetByID(ctx context.Context, id uint) (*mechanic.Mechanic, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMechanicRepository) GetByIDs(ctx context.Context, ids []uint) ([]*mechanic.Mechanic, error) {
	return nil, nil
}

func (m *mockMechanicRepository) Update(ctx context.Context, mech *mechanic.Mechanic) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mech)
	}
	return nil
}

func (m *mockMechanicRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMechanicRepository) List(ctx context.Context, filter mechanic.ListFilter) ([]*mechanic.Mechanic, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockMechanicRepository) FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if m.FindExistingIDsFunc != nil {
		return m.FindExistingIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockMechanicRepository) Leaderboard(ctx context.Context, limit int) ([]*mechanic.LeaderboardEntry, error) {
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx, limit)
	}
	return nil, nil
}

type mockDetacher struct {
	detached []uint
}

func (m *mockDetacher) DetachMechanic(ctx context.Context, mechanicID uint) error {
	m.detached = append(m.detached, mechanicID)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func mustMechanic(id uint, name, specialty string) *mechanic.Mechanic {
	m, err := mechanic.ReconstructMechanic(id, name, specialty)
	if err != nil {
		panic(err)
	}
	return m
}
