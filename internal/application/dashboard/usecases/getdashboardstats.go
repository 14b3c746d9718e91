package usecases

import (
	"context"

	"github.com/assetdesk/assetdesk/internal/domain/asset"
	"github.com/assetdesk/assetdesk/internal/domain/chat"
	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type GetDashboardStatsQuery struct {
	UserID uint
}

type DashboardStats struct {
	TicketsByStatus   map[string]int64 `json:"tickets_by_status"`
	TicketsByApproval map[string]int64 `json:"tickets_by_approval"`
	AssetsByStatus    map[string]int64 `json:"assets_by_status"`
	UnreadMessages    int64            `json:"unread_messages"`
}

type GetDashboardStatsExecutor interface {
	Execute(ctx context.Context, query GetDashboardStatsQuery) (*DashboardStats, error)
}

type GetDashboardStatsUseCase struct {
	ticketRepo  ticket.TicketRepository
	assetRepo   asset.AssetRepository
	messageRepo chat.MessageRepository
	logger      logger.Interface
}

func NewGetDashboardStatsUseCase(
	ticketRepo ticket.TicketRepository,
	assetRepo asset.AssetRepository,
	messageRepo chat.MessageRepository,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		ticketRepo:  ticketRepo,
		assetRepo:   assetRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Execute aggregates the portal landing-page counters. Counter sources
// that fail are zeroed and logged rather than failing the whole page.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, query GetDashboardStatsQuery) (*DashboardStats, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	stats := &DashboardStats{
		TicketsByStatus:   map[string]int64{},
		TicketsByApproval: map[string]int64{},
		AssetsByStatus:    map[string]int64{},
	}

	if byStatus, err := uc.ticketRepo.CountByStatus(ctx); err != nil {
		uc.logger.Warnw("ticket status counters unavailable", "error", err)
	} else {
		stats.TicketsByStatus = byStatus
	}

	if byApproval, err := uc.ticketRepo.CountByApproval(ctx); err != nil {
		uc.logger.Warnw("ticket approval counters unavailable", "error", err)
	} else {
		stats.TicketsByApproval = byApproval
	}

	if assetCounts, err := uc.assetRepo.CountByStatus(ctx); err != nil {
		uc.logger.Warnw("asset counters unavailable", "error", err)
	} else {
		stats.AssetsByStatus = assetCounts
	}

	if unread, err := uc.messageRepo.CountUnreadForUser(ctx, query.UserID); err != nil {
		uc.logger.Warnw("unread counter unavailable", "user_id", query.UserID, "error", err)
	} else {
		stats.UnreadMessages = unread
	}

	return stats, nil
}
