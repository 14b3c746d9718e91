package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
	db "github.com/assetdesk/assetdesk/internal/shared/db"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

// TicketNumberGenerator allocates TKT-YYYYMM-NNNNN identifiers. It must
// run inside the caller's transaction: the SELECT FOR UPDATE on the
// month's newest ticket serializes concurrent creations so two tickets
// never draw the same counter.
type TicketNumberGenerator struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTicketNumberGenerator(db *gorm.DB, logger logger.Interface) *TicketNumberGenerator {
	return &TicketNumberGenerator{
		db:     db,
		logger: logger,
	}
}

func (g *TicketNumberGenerator) Generate(ctx context.Context, now time.Time) (string, error) {
	txDB := db.GetTxFromContext(ctx, g.db)

	next, err := g.nextCounter(txDB, now)
	if err != nil {
		return "", err
	}

	return g.firstFree(now, next, func(candidate string) (bool, error) {
		var count int64
		if err := txDB.
			Model(&models.TicketModel{}).
			Where("number = ?", candidate).
			Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to check ticket number: %w", err)
		}
		return count > 0, nil
	})
}

// firstFree walks forward from the base counter over a bounded window.
// A gap can appear when a concurrent insert committed between our read
// and write.
func (g *TicketNumberGenerator) firstFree(now time.Time, next int, taken func(candidate string) (bool, error)) (string, error) {
	for attempt := 0; attempt < ticket.MaxNumberAttempts; attempt++ {
		candidate := ticket.FormatNumber(now, next+attempt)

		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}

		g.logger.Warnw("ticket number collision, trying next",
			"candidate", candidate, "attempt", attempt+1)
	}

	return "", ticket.ErrNumberExhausted
}

func (g *TicketNumberGenerator) nextCounter(txDB *gorm.DB, now time.Time) (int, error) {
	var last models.TicketModel

	query := txDB.
		Where("number LIKE ?", ticket.MonthPrefix(now)+"%").
		Order("number DESC")

	// SQLite rejects FOR UPDATE; its single-writer model already
	// serializes the read-then-insert.
	if txDB.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	err := query.First(&last).Error

	if err == gorm.ErrRecordNotFound {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read last ticket number: %w", err)
	}

	counter, parseErr := ticket.ParseNumberCounter(last.Number)
	if parseErr != nil {
		g.logger.Errorw("malformed ticket number in storage",
			"number", last.Number, "error", parseErr)
		return 0, parseErr
	}

	return counter + 1, nil
}
