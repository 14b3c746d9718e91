// Package user models the portal user directory. Users are owned by an
// external user-management system; this context reads them and never
// mutates identity or role.
package user

import (
	"fmt"
	"time"

	"github.com/assetdesk/assetdesk/internal/shared/authorization"
)

type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         authorization.UserRole
	department   string
	isActive     bool
	deletedAt    *time.Time
	createdAt    time.Time
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	role authorization.UserRole,
	department string,
	isActive bool,
	deletedAt *time.Time,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		department:   department,
		isActive:     isActive,
		deletedAt:    deletedAt,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) Department() string {
	return u.department
}

func (u *User) IsActive() bool {
	return u.isActive && u.deletedAt == nil
}

func (u *User) DeletedAt() *time.Time {
	return u.deletedAt
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}
