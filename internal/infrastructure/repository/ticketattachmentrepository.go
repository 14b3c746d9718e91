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

type TicketAttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketAttachmentRepository(db *gorm.DB) *TicketAttachmentRepository {
	return &TicketAttachmentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketAttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(attachment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return attachment.SetID(model.ID)
}

func (r *TicketAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var attachmentModels []models.TicketAttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, len(attachmentModels))
	for i, model := range attachmentModels {
		a, err := r.mapper.AttachmentToDomain(&model)
		if err != nil {
			return nil, err
		}
		attachments[i] = a
	}

	return attachments, nil
}
