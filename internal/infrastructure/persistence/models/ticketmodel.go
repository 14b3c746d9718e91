package models

type TicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	Number         string `gorm:"uniqueIndex;size:20;not null"`
	Type           string `gorm:"size:20;not null;index"`
	Subject        string `gorm:"size:200;not null"`
	Description    string `gorm:"type:text;not null"`
	Priority       string `gorm:"size:20;not null;index"`
	Status         string `gorm:"size:20;not null;index"`
	ApprovalStatus string `gorm:"size:20;not null;index"`
	RequesterID    uint   `gorm:"not null;index"`
	CreatedByID    uint   `gorm:"not null;index"`
	Department     string `gorm:"size:100;not null;index"`
	AssetID        *uint  `gorm:"index"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketHistoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	ActorID   uint   `gorm:"not null;index"`
	Action    string `gorm:"size:30;not null"`
	Detail    string `gorm:"size:1000"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketHistoryModel) TableName() string {
	return "ticket_history"
}

type TicketAttachmentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	UploaderID uint   `gorm:"not null;index"`
	FileName   string `gorm:"size:255;not null"`
	FilePath   string `gorm:"size:500;not null"`
	FileType   string `gorm:"size:100"`
	FileSize   int64  `gorm:"not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketAttachmentModel) TableName() string {
	return "ticket_attachments"
}
