package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/assetdesk/assetdesk/internal/domain/asset"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/mappers"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
	db "github.com/assetdesk/assetdesk/internal/shared/db"
)

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{
		db:     db,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save asset: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces zero-valued columns through so assigned_user_id is
	// cleared on unassignment.
	result := tx.
		Model(&models.AssetModel{}).
		Where("id = ?", model.ID).
		Select("name", "category", "status", "assigned_user_id", "department", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}

	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, assetID uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, assetID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) GetByUserID(ctx context.Context, userID uint) ([]*asset.Asset, error) {
	var assetModels []models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("assigned_user_id = ?", userID).
		Order("tag ASC").
		Find(&assetModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load user assets: %w", err)
	}

	assets := make([]*asset.Asset, len(assetModels))
	for i, model := range assetModels {
		a, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		assets[i] = a
	}

	return assets, nil
}

func (r *AssetRepository) List(ctx context.Context, filter asset.AssetFilter) ([]*asset.Asset, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AssetModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	query = query.Order("tag ASC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var assetModels []models.AssetModel
	if err := query.Find(&assetModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*asset.Asset, len(assetModels))
	for i, model := range assetModels {
		a, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		assets[i] = a
	}

	return assets, total, nil
}

func (r *AssetRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Bucket string
		Total  int64
	}

	var rows []row
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Model(&models.AssetModel{}).
		Select("status AS bucket, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count assets by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Bucket] = r.Total
	}
	return counts, nil
}
