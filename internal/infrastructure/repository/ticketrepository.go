package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/mappers"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
	db "github.com/assetdesk/assetdesk/internal/shared/db"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":              true,
	"number":          true,
	"subject":         true,
	"status":          true,
	"approval_status": true,
	"priority":        true,
	"type":            true,
	"requester_id":    true,
	"department":      true,
	"created_at":      true,
	"updated_at":      true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ApprovalStatus != nil {
		query = query.Where("approval_status = ?", filter.ApprovalStatus.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "status")
}

func (r *TicketRepository) CountByApproval(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "approval_status")
}

func (r *TicketRepository) countGrouped(ctx context.Context, column string) (map[string]int64, error) {
	type row struct {
		Bucket string
		Total  int64
	}

	var rows []row
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Model(&models.TicketModel{}).
		Select(column + " AS bucket, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by %s: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Bucket] = r.Total
	}
	return counts, nil
}
