package usecases

import (
	"context"
	"time"

	"github.com/assetdesk/assetdesk/internal/domain/device"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type ListDeviceLoginsQuery struct {
	TargetUserID uint
	ActorID      uint
	ActorRole    authorization.UserRole
	Limit        int
}

type DeviceLoginDTO struct {
	ID          uint      `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	LoggedInAt  time.Time `json:"logged_in_at"`
}

type ListDeviceLoginsResult struct {
	Logins []*DeviceLoginDTO `json:"logins"`
}

type ListDeviceLoginsUseCase struct {
	deviceRepo device.DeviceLoginRepository
	logger     logger.Interface
}

func NewListDeviceLoginsUseCase(deviceRepo device.DeviceLoginRepository, logger logger.Interface) *ListDeviceLoginsUseCase {
	return &ListDeviceLoginsUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (uc *ListDeviceLoginsUseCase) Execute(ctx context.Context, query ListDeviceLoginsQuery) (*ListDeviceLoginsResult, error) {
	if query.TargetUserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	if !authorization.CanAccessResourceByOwnerID(query.ActorID, query.ActorRole, query.TargetUserID) {
		return nil, errors.NewForbiddenError("you may only view your own login history")
	}

	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	logins, err := uc.deviceRepo.ListByUser(ctx, query.TargetUserID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list device logins", "user_id", query.TargetUserID, "error", err)
		return nil, errors.NewInternalError("failed to load login history")
	}

	dtos := make([]*DeviceLoginDTO, len(logins))
	for i, l := range logins {
		dtos[i] = &DeviceLoginDTO{
			ID:          l.ID(),
			Fingerprint: l.Fingerprint(),
			IPAddress:   l.IPAddress(),
			UserAgent:   l.UserAgent(),
			LoggedInAt:  l.LoggedInAt(),
		}
	}

	return &ListDeviceLoginsResult{Logins: dtos}, nil
}
