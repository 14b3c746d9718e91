package mappers

import (
	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	vo "github.com/assetdesk/assetdesk/internal/domain/ticket/valueobjects"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	HistoryToModel(entry *ticket.HistoryEntry) *models.TicketHistoryModel
	HistoryToDomain(model *models.TicketHistoryModel) (*ticket.HistoryEntry, error)
	AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel
	AttachmentToDomain(model *models.TicketAttachmentModel) (*ticket.Attachment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:             t.ID(),
		Number:         t.Number(),
		Type:           t.Type().String(),
		Subject:        t.Subject(),
		Description:    t.Description(),
		Priority:       t.Priority().String(),
		Status:         t.Status().String(),
		ApprovalStatus: t.ApprovalStatus().String(),
		RequesterID:    t.RequesterID(),
		CreatedByID:    t.CreatedByID(),
		Department:     t.Department(),
		AssetID:        t.AssetID(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		vo.TicketType(model.Type),
		model.Subject,
		model.Description,
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		vo.ApprovalStatus(model.ApprovalStatus),
		model.RequesterID,
		model.CreatedByID,
		model.Department,
		model.AssetID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) HistoryToModel(entry *ticket.HistoryEntry) *models.TicketHistoryModel {
	return &models.TicketHistoryModel{
		ID:        entry.ID(),
		TicketID:  entry.TicketID(),
		ActorID:   entry.ActorID(),
		Action:    string(entry.Action()),
		Detail:    entry.Detail(),
		CreatedAt: entry.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.TicketHistoryModel) (*ticket.HistoryEntry, error) {
	return ticket.ReconstructHistoryEntry(
		model.ID,
		model.TicketID,
		model.ActorID,
		ticket.HistoryAction(model.Action),
		model.Detail,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel {
	return &models.TicketAttachmentModel{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		UploaderID: a.UploaderID(),
		FileName:   a.FileName(),
		FilePath:   a.FilePath(),
		FileType:   a.FileType(),
		FileSize:   a.FileSize(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.TicketAttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.UploaderID,
		model.FileName,
		model.FilePath,
		model.FileType,
		model.FileSize,
		millisToTime(model.CreatedAt),
	)
}
