package mappers

import (
	"github.com/assetdesk/assetdesk/internal/domain/asset"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
)

type AssetMapper interface {
	ToModel(a *asset.Asset) *models.AssetModel
	ToDomain(model *models.AssetModel) (*asset.Asset, error)
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:             a.ID(),
		Tag:            a.Tag(),
		Name:           a.Name(),
		Category:       a.Category(),
		Status:         a.Status().String(),
		AssignedUserID: a.AssignedUserID(),
		Department:     a.Department(),
		CreatedAt:      a.CreatedAt().UnixMilli(),
		UpdatedAt:      a.UpdatedAt().UnixMilli(),
	}
}

func (m *AssetMapperImpl) ToDomain(model *models.AssetModel) (*asset.Asset, error) {
	return asset.ReconstructAsset(
		model.ID,
		model.Tag,
		model.Name,
		model.Category,
		asset.AssetStatus(model.Status),
		model.AssignedUserID,
		model.Department,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
