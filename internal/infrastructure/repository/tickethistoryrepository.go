package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/mappers"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
	db "github.com/assetdesk/assetdesk/internal/shared/db"
)

type TicketHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketHistoryRepository(db *gorm.DB) *TicketHistoryRepository {
	return &TicketHistoryRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketHistoryRepository) Append(ctx context.Context, entry *ticket.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *TicketHistoryRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	var historyModels []models.TicketHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket history: %w", err)
	}

	entries := make([]*ticket.HistoryEntry, len(historyModels))
	for i, model := range historyModels {
		entry, err := r.mapper.HistoryToDomain(&model)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	return entries, nil
}
