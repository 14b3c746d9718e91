package usecases

import (
	"context"

	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type ListOnlineUsersQuery struct {
	ActorRole authorization.UserRole
}

type OnlineUserDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type ListOnlineUsersResult struct {
	Users []*OnlineUserDTO `json:"users"`
	Total int              `json:"total"`
}

type ListOnlineUsersUseCase struct {
	presence OnlineLister
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListOnlineUsersUseCase(
	presence OnlineLister,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListOnlineUsersUseCase {
	return &ListOnlineUsersUseCase{
		presence: presence,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute resolves the users with a live presence heartbeat. Users that
// cannot be loaded are skipped; a stale presence key must not break the
// listing.
func (uc *ListOnlineUsersUseCase) Execute(ctx context.Context, query ListOnlineUsersQuery) (*ListOnlineUsersResult, error) {
	if !query.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("admin access required")
	}

	userIDs, err := uc.presence.ListOnline(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list online users", "error", err)
		return nil, errors.NewInternalError("failed to load online users")
	}

	dtos := make([]*OnlineUserDTO, 0, len(userIDs))
	for _, id := range userIDs {
		u, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			uc.logger.Warnw("online user not resolvable", "user_id", id, "error", err)
			continue
		}
		dtos = append(dtos, &OnlineUserDTO{
			ID:         u.ID(),
			Name:       u.Name(),
			Role:       u.Role().String(),
			Department: u.Department(),
		})
	}

	return &ListOnlineUsersResult{Users: dtos, Total: len(dtos)}, nil
}
