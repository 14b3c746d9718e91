package usecases

import (
	"context"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	vo "github.com/assetdesk/assetdesk/internal/domain/ticket/valueobjects"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	UserID         uint
	UserRole       authorization.UserRole
	UserDepartment string

	Status         string
	ApprovalStatus string
	Priority       string
	Type           string
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}

type ListTicketsResult struct {
	Tickets    []*TicketDTO
	TotalCount int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	dtos := make([]*TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = ticketToDTO(t)
	}

	return &ListTicketsResult{
		Tickets:    dtos,
		TotalCount: total,
	}, nil
}

// buildFilter applies the role-based visibility rules: employees see
// their own tickets, managers see their department, admins see all.
func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	switch {
	case query.UserRole.IsAdmin():
		// no scoping
	case query.UserRole.IsManager():
		dept := query.UserDepartment
		filter.Department = &dept
	default:
		uid := query.UserID
		filter.RequesterID = &uid
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.ApprovalStatus != "" {
		approval, err := vo.NewApprovalStatus(query.ApprovalStatus)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.ApprovalStatus = &approval
	}

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	if query.Type != "" {
		ticketType, err := vo.NewTicketType(query.Type)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Type = &ticketType
	}

	return filter, nil
}
