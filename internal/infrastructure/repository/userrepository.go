package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/mappers"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	db "github.com/assetdesk/assetdesk/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ListActiveManagersByDepartment(ctx context.Context, department string) ([]*user.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.ActiveUsers()).
		Where("role = ?", authorization.RoleManager.String()).
		Where("department = ?", department).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list department managers: %w", err)
	}

	return r.toDomainSlice(userModels)
}

func (r *UserRepository) ListActiveAdmins(ctx context.Context) ([]*user.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.ActiveUsers()).
		Where("role IN ?", []string{authorization.RoleAdmin.String(), authorization.RoleSuperadmin.String()}).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	return r.toDomainSlice(userModels)
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{})

	if filter.ActiveOnly {
		query = query.Scopes(db.ActiveUsers())
	}
	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query = query.Order("name ASC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	var userModels []models.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.toDomainSlice(userModels)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) toDomainSlice(userModels []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, len(userModels))
	for i, model := range userModels {
		u, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		users[i] = u
	}
	return users, nil
}
