package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type testLogger struct{}

func (testLogger) Debug(msg string, args ...any)                   {}
func (testLogger) Info(msg string, args ...any)                    {}
func (testLogger) Warn(msg string, args ...any)                    {}
func (testLogger) Error(msg string, args ...any)                   {}
func (l testLogger) With(args ...any) logger.Interface             { return l }
func (l testLogger) Named(name string) logger.Interface            { return l }
func (testLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (testLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (testLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (testLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.TicketModel{}))
	return db
}

func seedTicket(t *testing.T, db *gorm.DB, number string) {
	t.Helper()

	model := models.TicketModel{
		Number:         number,
		Type:           "incident",
		Subject:        "Printer offline",
		Description:    "Office printer does not respond",
		Priority:       "medium",
		Status:         "open",
		ApprovalStatus: "pending",
		RequesterID:    1,
		CreatedByID:    1,
		Department:     "Engineering",
	}
	require.NoError(t, db.Create(&model).Error)
}

func TestTicketNumberGenerator_Generate(t *testing.T) {
	now := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

	t.Run("first ticket of the month starts at 00001", func(t *testing.T) {
		db := setupTestDB(t)
		gen := NewTicketNumberGenerator(db, testLogger{})

		number, err := gen.Generate(context.Background(), now)

		require.NoError(t, err)
		assert.Equal(t, "TKT-202608-00001", number)
	})

	t.Run("increments past the newest ticket of the month", func(t *testing.T) {
		db := setupTestDB(t)
		seedTicket(t, db, "TKT-202608-00003")
		seedTicket(t, db, "TKT-202608-00007")
		gen := NewTicketNumberGenerator(db, testLogger{})

		number, err := gen.Generate(context.Background(), now)

		require.NoError(t, err)
		assert.Equal(t, "TKT-202608-00008", number)
	})

	t.Run("ignores tickets from other months", func(t *testing.T) {
		db := setupTestDB(t)
		seedTicket(t, db, "TKT-202607-00042")
		gen := NewTicketNumberGenerator(db, testLogger{})

		number, err := gen.Generate(context.Background(), now)

		require.NoError(t, err)
		assert.Equal(t, "TKT-202608-00001", number)
	})

	t.Run("generated numbers stay unique across sequential calls", func(t *testing.T) {
		db := setupTestDB(t)
		gen := NewTicketNumberGenerator(db, testLogger{})

		seen := make(map[string]bool)
		for i := 0; i < 5; i++ {
			number, err := gen.Generate(context.Background(), now)
			require.NoError(t, err)
			assert.False(t, seen[number])
			seen[number] = true
			seedTicket(t, db, number)
		}
		assert.Contains(t, seen, "TKT-202608-00005")
	})

	t.Run("malformed stored number fails the generation", func(t *testing.T) {
		db := setupTestDB(t)
		seedTicket(t, db, "TKT-202608-XYZZY")
		gen := NewTicketNumberGenerator(db, testLogger{})

		_, err := gen.Generate(context.Background(), now)

		assert.Error(t, err)
	})
}

func TestTicketNumberGenerator_FirstFree(t *testing.T) {
	now := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	gen := NewTicketNumberGenerator(nil, testLogger{})

	t.Run("skips taken candidates until a free one", func(t *testing.T) {
		taken := map[string]bool{
			"TKT-202608-00004": true,
			"TKT-202608-00005": true,
		}

		number, err := gen.firstFree(now, 4, func(candidate string) (bool, error) {
			return taken[candidate], nil
		})

		require.NoError(t, err)
		assert.Equal(t, "TKT-202608-00006", number)
	})

	t.Run("gives up after the bounded window is exhausted", func(t *testing.T) {
		checks := 0

		_, err := gen.firstFree(now, 1, func(candidate string) (bool, error) {
			checks++
			return true, nil
		})

		assert.ErrorIs(t, err, ticket.ErrNumberExhausted)
		assert.Equal(t, ticket.MaxNumberAttempts, checks)
	})

	t.Run("propagates lookup failures", func(t *testing.T) {
		_, err := gen.firstFree(now, 1, func(candidate string) (bool, error) {
			return false, assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
	})
}
