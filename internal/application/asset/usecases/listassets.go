package usecases

import (
	"context"

	"github.com/assetdesk/assetdesk/internal/domain/asset"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type ListAssetsQuery struct {
	Status     string
	Category   string
	Department string
	Page       int
	PageSize   int
}

type ListAssetsResult struct {
	Assets     []*AssetDTO
	TotalCount int64
}

type ListAssetsUseCase struct {
	assetRepo asset.AssetRepository
	logger    logger.Interface
}

func NewListAssetsUseCase(assetRepo asset.AssetRepository, logger logger.Interface) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error) {
	filter := asset.AssetFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	if query.Status != "" {
		status := asset.AssetStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid asset status")
		}
		filter.Status = &status
	}
	if query.Category != "" {
		category := query.Category
		filter.Category = &category
	}
	if query.Department != "" {
		department := query.Department
		filter.Department = &department
	}

	assets, total, err := uc.assetRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err)
		return nil, errors.NewInternalError("failed to list assets")
	}

	dtos := make([]*AssetDTO, len(assets))
	for i, a := range assets {
		dtos[i] = assetToDTO(a)
	}

	return &ListAssetsResult{
		Assets:     dtos,
		TotalCount: total,
	}, nil
}
