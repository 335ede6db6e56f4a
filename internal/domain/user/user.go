package user

import (
	"fmt"
	"time"

	"github.com/garagehq/shopapi/internal/domain/shared"
	vo "github.com/garagehq/shopapi/internal/domain/user/valueobjects"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/errors"
)

const maxNameLength = 120

// User is a shop customer account. Role decides which protected routes the
// user's tokens may reach.
type User struct {
	id           uint
	name         string
	email        *vo.Email
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user with the default role. An empty name falls back to
// the email local part.
func NewUser(name string, email *vo.Email, passwordHash string) (*User, error) {
	if email == nil {
		return nil, errors.NewValidationError("email is required")
	}
	if passwordHash == "" {
		return nil, errors.NewValidationError("password is required")
	}
	if shared.NormalizeText(name) == "" {
		name = email.LocalPart()
	}
	validName, err := shared.ValidateText("name", name, 1, maxNameLength)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		name:         validName,
		email:        email,
		passwordHash: passwordHash,
		role:         authorization.RoleUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(id uint, name string, email *vo.Email, passwordHash string, role authorization.UserRole, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         authorization.ParseUserRole(string(role)),
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateName(name string) error {
	validName, err := shared.ValidateText("name", name, 1, maxNameLength)
	if err != nil {
		return err
	}
	u.name = validName
	u.touch()
	return nil
}

func (u *User) UpdateEmail(email *vo.Email) error {
	if email == nil {
		return errors.NewValidationError("email is required")
	}
	if u.email.Equals(email) {
		return nil
	}
	u.email = email
	u.touch()
	return nil
}

func (u *User) UpdatePasswordHash(hash string) error {
	if hash == "" {
		return errors.NewValidationError("password is required")
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

func (u *User) SetRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid role %q", role))
	}
	u.role = role
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}
