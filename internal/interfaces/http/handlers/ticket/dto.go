package ticket

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/assetdesk/assetdesk/internal/application/ticket/usecases"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Type        string `form:"type" json:"type" binding:"required"`
	Subject     string `form:"subject" json:"subject" binding:"required,max=200"`
	Description string `form:"description" json:"description" binding:"required,max=5000"`
	Priority    string `form:"priority" json:"priority" binding:"required"`
	AssetID     *uint  `form:"asset_id" json:"asset_id,omitempty"`
	RequesterID uint   `form:"requester_id" json:"requester_id,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint, uploads []usecases.AttachmentUpload) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Type:        r.Type,
		Subject:     r.Subject,
		Description: r.Description,
		Priority:    r.Priority,
		AssetID:     r.AssetID,
		RequesterID: r.RequesterID,
		CreatorID:   creatorID,
		Attachments: uploads,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress resolved closed"`
}

type ApproveTicketRequest struct {
	Note string `json:"note,omitempty" binding:"max=500"`
}

type RejectTicketRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type ListTicketsRequest struct {
	Page           int
	PageSize       int
	Status         string `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	ApprovalStatus string `json:"approval_status" validate:"omitempty,oneof=pending approved rejected"`
	Priority       string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Type           string `json:"type" validate:"omitempty,oneof=incident request maintenance complaint"`
	SortBy         string `json:"sort_by" validate:"omitempty,oneof=id number subject status approval_status priority type requester_id department created_at updated_at"`
	SortOrder      string `json:"sort_order" validate:"omitempty,oneof=asc desc ASC DESC"`
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &ListTicketsRequest{
		Page:           page,
		PageSize:       pageSize,
		Status:         c.Query("status"),
		ApprovalStatus: c.Query("approval_status"),
		Priority:       c.Query("priority"),
		Type:           c.Query("type"),
		SortBy:         c.Query("sort_by"),
		SortOrder:      c.Query("sort_order"),
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}

// collectUploads opens the multipart files under the attachments field.
// The returned closer must run after the use case finishes reading.
func collectUploads(files []*multipart.FileHeader) ([]usecases.AttachmentUpload, func(), error) {
	var uploads []usecases.AttachmentUpload
	var opened []multipart.File

	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, errors.NewValidationError("failed to read uploaded file")
		}
		opened = append(opened, f)
		uploads = append(uploads, usecases.AttachmentUpload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     f,
		})
	}

	return uploads, closeAll, nil
}
