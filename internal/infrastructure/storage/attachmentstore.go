// Package storage persists ticket attachments on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/assetdesk/assetdesk/internal/application/ticket/usecases"
	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/shared/config"
	"github.com/assetdesk/assetdesk/internal/shared/id"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

const storedTokenLength = 8

// AttachmentStore writes uploaded files under the configured upload
// directory and records them through the attachment repository. Rejected
// or failed files are skipped without failing the ticket operation.
type AttachmentStore struct {
	dir            string
	maxFileSize    int64
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewAttachmentStore(cfg *config.UploadConfig, attachmentRepo ticket.AttachmentRepository, logger logger.Interface) *AttachmentStore {
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 || maxSize > ticket.MaxAttachmentSize {
		maxSize = ticket.MaxAttachmentSize
	}
	return &AttachmentStore{
		dir:            cfg.Dir,
		maxFileSize:    maxSize,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (s *AttachmentStore) Ingest(ctx context.Context, t *ticket.Ticket, uploaderID uint, uploads []usecases.AttachmentUpload) []*ticket.Attachment {
	if len(uploads) == 0 {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Errorw("failed to create upload directory", "dir", s.dir, "error", err)
		return nil
	}

	var saved []*ticket.Attachment
	for _, upload := range uploads {
		attachment, err := s.ingestOne(ctx, t, uploaderID, upload)
		if err != nil {
			s.logger.Warnw("attachment skipped",
				"ticket", t.Number(), "file", upload.FileName, "error", err)
			continue
		}
		saved = append(saved, attachment)
	}

	return saved
}

func (s *AttachmentStore) ingestOne(ctx context.Context, t *ticket.Ticket, uploaderID uint, upload usecases.AttachmentUpload) (*ticket.Attachment, error) {
	if upload.Size > s.maxFileSize {
		return nil, fmt.Errorf("file exceeds size limit")
	}
	if !ticket.IsAllowedAttachment(upload.FileName, upload.Size) {
		return nil, fmt.Errorf("file type not accepted")
	}

	storedName := s.storedName(t.Number(), upload.FileName)
	fullPath := filepath.Join(s.dir, storedName)

	if err := s.writeFile(fullPath, upload.Content, upload.Size); err != nil {
		return nil, err
	}

	attachment, err := ticket.NewAttachment(
		t.ID(),
		uploaderID,
		upload.FileName,
		storedName,
		upload.ContentType,
		upload.Size,
	)
	if err != nil {
		os.Remove(fullPath)
		return nil, err
	}

	if err := s.attachmentRepo.Save(ctx, attachment); err != nil {
		os.Remove(fullPath)
		return nil, err
	}

	return attachment, nil
}

// storedName builds a collision-free on-disk name from the ticket number,
// a timestamp, and a random token, keeping only the original extension.
func (s *AttachmentStore) storedName(ticketNumber, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s_%d_%s%s",
		ticketNumber,
		time.Now().UnixNano(),
		id.MustGenerate(storedTokenLength),
		ext,
	)
}

func (s *AttachmentStore) writeFile(path string, content io.Reader, size int64) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(content, size+1))
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if written > size {
		os.Remove(path)
		return fmt.Errorf("file larger than declared size")
	}

	return nil
}
