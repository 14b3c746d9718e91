package ticket

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// MaxAttachmentSize is the per-file ceiling in bytes (5MB).
const MaxAttachmentSize = 5 * 1024 * 1024

var allowedAttachmentExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
}

// IsAllowedAttachment reports whether a file passes the extension
// allow-list and the size ceiling.
func IsAllowedAttachment(fileName string, size int64) bool {
	if size <= 0 || size > MaxAttachmentSize {
		return false
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	return allowedAttachmentExtensions[ext]
}

type Attachment struct {
	id         uint
	ticketID   uint
	uploaderID uint
	fileName   string
	filePath   string
	fileType   string
	fileSize   int64
	createdAt  time.Time
}

func NewAttachment(
	ticketID uint,
	uploaderID uint,
	fileName string,
	filePath string,
	fileType string,
	fileSize int64,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if filePath == "" {
		return nil, fmt.Errorf("file path is required")
	}
	if !IsAllowedAttachment(fileName, fileSize) {
		return nil, fmt.Errorf("file %s is not an accepted attachment", fileName)
	}

	return &Attachment{
		ticketID:   ticketID,
		uploaderID: uploaderID,
		fileName:   fileName,
		filePath:   filePath,
		fileType:   fileType,
		fileSize:   fileSize,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	uploaderID uint,
	fileName string,
	filePath string,
	fileType string,
	fileSize int64,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:         id,
		ticketID:   ticketID,
		uploaderID: uploaderID,
		fileName:   fileName,
		filePath:   filePath,
		fileType:   fileType,
		fileSize:   fileSize,
		createdAt:  createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) UploaderID() uint {
	return a.uploaderID
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) FilePath() string {
	return a.filePath
}

func (a *Attachment) FileType() string {
	return a.fileType
}

func (a *Attachment) FileSize() int64 {
	return a.fileSize
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
