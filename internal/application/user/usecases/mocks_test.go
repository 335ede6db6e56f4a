package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/garagehq/shopapi/internal/domain/user"
	vo "github.com/garagehq/shopapi/internal/domain/user/valueobjects"
	"github.com/garagehq/shopapi/internal/shared/authorization"
)

type mockUserRepository struct {
	CreateFunc     func(ctx context.Context, u *user.User) error
	GetByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc   func(ctx context.Context, ids []uint) ([]*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc     func(ctx context.Context, u *user.User) error
	DeleteFunc     func(ctx context.Context, id uint) error
	ListFunc       func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

// plainHasher stores "hashed:" + password so tests can check what was hashed.
type plainHasher struct {
	dummyCalls int
}

func (h *plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (h *plainHasher) VerifyDummy(string) {
	h.dummyCalls++
}

type mockTokenIssuer struct {
	issuedFor uint
	issuedAs  authorization.UserRole
}

func (m *mockTokenIssuer) Issue(subjectID uint, role authorization.UserRole, ttl time.Duration) (string, error) {
	m.issuedFor = subjectID
	m.issuedAs = role
	return "signed-token", nil
}

func (m *mockTokenIssuer) DefaultTTL() time.Duration {
	return time.Hour
}

type mockMailer struct {
	sent []string
	err  error
}

func (m *mockMailer) SendWelcomeEmail(to, name string) error {
	m.sent = append(m.sent, to)
	return m.err
}

type mockPolicy struct {
	allowed map[authorization.UserRole]bool
}

func (m *mockPolicy) Enforce(role, resource, action string) (bool, error) {
	return m.allowed[authorization.UserRole(role)], nil
}

type mockTicketCleaner struct {
	deletedFor []uint
}

func (m *mockTicketCleaner) DeleteByOwner(ctx context.Context, userID uint) error {
	m.deletedFor = append(m.deletedFor, userID)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func existingUser(id uint, email string, role authorization.UserRole) *user.User {
	addr, err := vo.NewEmail(email)
	if err != nil {
		panic(err)
	}
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, addr.LocalPart(), addr, "hashed:password123", role, now, now)
	if err != nil {
		panic(err)
	}
	return u
}
