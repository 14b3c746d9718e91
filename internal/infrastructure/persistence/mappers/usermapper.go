package mappers

import (
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
)

type UserMapper interface {
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		authorization.UserRole(model.Role),
		model.Department,
		model.IsActive,
		millisPtrToTimePtr(model.DeletedAt),
		millisToTime(model.CreatedAt),
	)
}
