package usecases

import (
	"context"

	"github.com/assetdesk/assetdesk/internal/domain/asset"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type UnassignAssetCommand struct {
	AssetID uint
	ActorID uint
}

type UnassignAssetUseCase struct {
	assetRepo asset.AssetRepository
	logger    logger.Interface
}

func NewUnassignAssetUseCase(assetRepo asset.AssetRepository, logger logger.Interface) *UnassignAssetUseCase {
	return &UnassignAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *UnassignAssetUseCase) Execute(ctx context.Context, cmd UnassignAssetCommand) (*AssetDTO, error) {
	if cmd.AssetID == 0 {
		return nil, errors.NewValidationError("asset ID is required")
	}

	a, err := uc.assetRepo.GetByID(ctx, cmd.AssetID)
	if err != nil {
		return nil, errors.NewNotFoundError("asset not found")
	}

	if err := a.Unassign(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to persist asset unassignment", "asset_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to unassign asset")
	}

	uc.logger.Infow("asset unassigned", "asset_id", a.ID(), "tag", a.Tag(), "actor_id", cmd.ActorID)

	return assetToDTO(a), nil
}
