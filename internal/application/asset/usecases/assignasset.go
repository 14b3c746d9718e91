package usecases

import (
	"context"

	"github.com/assetdesk/assetdesk/internal/domain/asset"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type AssignAssetCommand struct {
	AssetID uint
	UserID  uint
	ActorID uint
}

type AssignAssetUseCase struct {
	assetRepo asset.AssetRepository
	userRepo  user.UserRepository
	logger    logger.Interface
}

func NewAssignAssetUseCase(assetRepo asset.AssetRepository, userRepo user.UserRepository, logger logger.Interface) *AssignAssetUseCase {
	return &AssignAssetUseCase{
		assetRepo: assetRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *AssignAssetUseCase) Execute(ctx context.Context, cmd AssignAssetCommand) (*AssetDTO, error) {
	if cmd.AssetID == 0 || cmd.UserID == 0 {
		return nil, errors.NewValidationError("asset ID and user ID are required")
	}

	a, err := uc.assetRepo.GetByID(ctx, cmd.AssetID)
	if err != nil {
		return nil, errors.NewNotFoundError("asset not found")
	}

	if a.AssignedUserID() != nil {
		return nil, errors.NewConflictError("asset is already assigned")
	}

	assignee, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	if !assignee.IsActive() {
		return nil, errors.NewValidationError("cannot assign an asset to an inactive user")
	}

	if err := a.AssignTo(assignee.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to persist asset assignment",
			"asset_id", a.ID(), "user_id", assignee.ID(), "error", err)
		return nil, errors.NewInternalError("failed to assign asset")
	}

	uc.logger.Infow("asset assigned",
		"asset_id", a.ID(), "tag", a.Tag(), "user_id", assignee.ID(), "actor_id", cmd.ActorID)

	return assetToDTO(a), nil
}
