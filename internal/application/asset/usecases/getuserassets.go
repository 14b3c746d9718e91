package usecases

import (
	"context"
	"time"

	"github.com/assetdesk/assetdesk/internal/domain/asset"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type GetUserAssetsQuery struct {
	TargetUserID uint
	ActorID      uint
	ActorRole    authorization.UserRole
}

// GetUserAssetsResult carries the owner's profile fields alongside the
// asset list so the caller renders one response without a second lookup.
type GetUserAssetsResult struct {
	UserID uint        `json:"user_id"`
	Name   string      `json:"name"`
	Role   string      `json:"role"`
	Assets []*AssetDTO `json:"assets"`
}

type AssetDTO struct {
	ID             uint      `json:"id"`
	Tag            string    `json:"tag"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Status         string    `json:"status"`
	AssignedUserID *uint     `json:"assigned_user_id,omitempty"`
	Department     string    `json:"department"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type GetUserAssetsUseCase struct {
	assetRepo asset.AssetRepository
	userRepo  user.UserRepository
	logger    logger.Interface
}

func NewGetUserAssetsUseCase(assetRepo asset.AssetRepository, userRepo user.UserRepository, logger logger.Interface) *GetUserAssetsUseCase {
	return &GetUserAssetsUseCase{
		assetRepo: assetRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *GetUserAssetsUseCase) Execute(ctx context.Context, query GetUserAssetsQuery) (*GetUserAssetsResult, error) {
	if query.TargetUserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	if !authorization.CanAccessResourceByOwnerID(query.ActorID, query.ActorRole, query.TargetUserID) {
		return nil, errors.NewForbiddenError("you may only view your own assets")
	}

	owner, err := uc.userRepo.GetByID(ctx, query.TargetUserID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	assets, err := uc.assetRepo.GetByUserID(ctx, owner.ID())
	if err != nil {
		uc.logger.Errorw("failed to load user assets", "user_id", owner.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load assets")
	}

	dtos := make([]*AssetDTO, len(assets))
	for i, a := range assets {
		dtos[i] = assetToDTO(a)
	}

	return &GetUserAssetsResult{
		UserID: owner.ID(),
		Name:   owner.Name(),
		Role:   owner.Role().String(),
		Assets: dtos,
	}, nil
}

func assetToDTO(a *asset.Asset) *AssetDTO {
	return &AssetDTO{
		ID:             a.ID(),
		Tag:            a.Tag(),
		Name:           a.Name(),
		Category:       a.Category(),
		Status:         a.Status().String(),
		AssignedUserID: a.AssignedUserID(),
		Department:     a.Department(),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}
