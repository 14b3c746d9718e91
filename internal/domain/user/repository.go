package user

import "context"

// UserRepository is read-only from the portal's perspective; the user
// directory is managed by an external component.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// ListActiveManagersByDepartment backs the department-manager
	// notification path.
	ListActiveManagersByDepartment(ctx context.Context, department string) ([]*User, error)
	// ListActiveAdmins backs the fallback notification path used when a
	// department has no active manager. Includes superadmins.
	ListActiveAdmins(ctx context.Context) ([]*User, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}

type ListFilter struct {
	Department *string
	Role       *string
	ActiveOnly bool
	Page       int
	PageSize   int
}
