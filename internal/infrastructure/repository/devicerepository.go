package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/assetdesk/assetdesk/internal/domain/device"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/mappers"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
	db "github.com/assetdesk/assetdesk/internal/shared/db"
)

type DeviceLoginRepository struct {
	db     *gorm.DB
	mapper mappers.DeviceMapper
}

func NewDeviceLoginRepository(db *gorm.DB) *DeviceLoginRepository {
	return &DeviceLoginRepository{
		db:     db,
		mapper: mappers.NewDeviceMapper(),
	}
}

func (r *DeviceLoginRepository) Save(ctx context.Context, login *device.DeviceLogin) error {
	model := r.mapper.ToModel(login)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save device login: %w", err)
	}

	return login.SetID(model.ID)
}

func (r *DeviceLoginRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*device.DeviceLogin, error) {
	var loginModels []models.DeviceLoginModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Order("logged_in_at DESC").
		Limit(limit).
		Find(&loginModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list device logins: %w", err)
	}

	logins := make([]*device.DeviceLogin, len(loginModels))
	for i, model := range loginModels {
		l, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		logins[i] = l
	}

	return logins, nil
}
