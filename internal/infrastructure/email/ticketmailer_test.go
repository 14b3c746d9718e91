package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetdesk/assetdesk/internal/domain/ticket"
	vo "github.com/assetdesk/assetdesk/internal/domain/ticket/valueobjects"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type sentMail struct {
	To      string
	Subject string
}

type fakeSender struct {
	sent    []sentMail
	failFor map[string]error
}

func (s *fakeSender) Send(to, subject, htmlBody, plainBody string) error {
	if err, ok := s.failFor[to]; ok {
		return err
	}
	s.sent = append(s.sent, sentMail{To: to, Subject: subject})
	return nil
}

func (s *fakeSender) recipients() []string {
	var out []string
	for _, m := range s.sent {
		out = append(out, m.To)
	}
	return out
}

type fakeUserRepo struct {
	managers      []*user.User
	admins        []*user.User
	adminsQueried bool
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeUserRepo) ListActiveManagersByDepartment(ctx context.Context, department string) ([]*user.User, error) {
	return r.managers, nil
}

func (r *fakeUserRepo) ListActiveAdmins(ctx context.Context) ([]*user.User, error) {
	r.adminsQueried = true
	return r.admins, nil
}

func (r *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, errors.New("not implemented")
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (l nopLogger) With(args ...any) logger.Interface             { return l }
func (l nopLogger) Named(name string) logger.Interface            { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func makeUser(t *testing.T, id uint, name, email string, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, name, email, "hash", role, "Engineering", true, nil, time.Now())
	require.NoError(t, err)
	return u
}

func makeTicket(t *testing.T, requesterID uint, role authorization.UserRole) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(
		vo.TypeIncident, "Printer offline", "The office printer does not respond.",
		vo.PriorityMedium, requesterID, requesterID, role, "Engineering", nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetNumber("TKT-202608-00001"))
	return tk
}

// ---------------------------------------------------------------------------
// NotifyTicketCreated
// ---------------------------------------------------------------------------

func TestTicketMailer_NotifyTicketCreated(t *testing.T) {
	t.Run("notifies department managers and the requester", func(t *testing.T) {
		requester := makeUser(t, 1, "Alice", "alice@example.com", authorization.RoleEmployee)
		repo := &fakeUserRepo{
			managers: []*user.User{
				makeUser(t, 2, "Mara", "mara@example.com", authorization.RoleManager),
			},
			admins: []*user.User{
				makeUser(t, 3, "Ada", "ada@example.com", authorization.RoleAdmin),
			},
		}
		sender := &fakeSender{}
		mailer := NewTicketMailer(sender, repo, nopLogger{})

		err := mailer.NotifyTicketCreated(context.Background(), makeTicket(t, 1, authorization.RoleEmployee), requester)

		require.NoError(t, err)
		assert.Equal(t, []string{"alice@example.com", "mara@example.com"}, sender.recipients())
		assert.False(t, repo.adminsQueried)
	})

	t.Run("falls back to admins when the department has no active manager", func(t *testing.T) {
		requester := makeUser(t, 1, "Alice", "alice@example.com", authorization.RoleEmployee)
		repo := &fakeUserRepo{
			admins: []*user.User{
				makeUser(t, 3, "Ada", "ada@example.com", authorization.RoleAdmin),
				makeUser(t, 4, "Root", "root@example.com", authorization.RoleSuperadmin),
			},
		}
		sender := &fakeSender{}
		mailer := NewTicketMailer(sender, repo, nopLogger{})

		err := mailer.NotifyTicketCreated(context.Background(), makeTicket(t, 1, authorization.RoleEmployee), requester)

		require.NoError(t, err)
		assert.True(t, repo.adminsQueried)
		assert.Equal(t, []string{"alice@example.com", "ada@example.com", "root@example.com"}, sender.recipients())
	})

	t.Run("does not notify the requester as their own reviewer", func(t *testing.T) {
		manager := makeUser(t, 2, "Mara", "mara@example.com", authorization.RoleManager)
		repo := &fakeUserRepo{managers: []*user.User{manager}}
		sender := &fakeSender{}
		mailer := NewTicketMailer(sender, repo, nopLogger{})

		err := mailer.NotifyTicketCreated(context.Background(), makeTicket(t, 2, authorization.RoleManager), manager)

		require.NoError(t, err)
		assert.Equal(t, []string{"mara@example.com"}, sender.recipients())
	})

	t.Run("keeps sending after an individual failure and reports the first error", func(t *testing.T) {
		requester := makeUser(t, 1, "Alice", "alice@example.com", authorization.RoleEmployee)
		repo := &fakeUserRepo{
			managers: []*user.User{
				makeUser(t, 2, "Mara", "mara@example.com", authorization.RoleManager),
				makeUser(t, 3, "Milo", "milo@example.com", authorization.RoleManager),
			},
		}
		smtpErr := errors.New("smtp refused")
		sender := &fakeSender{failFor: map[string]error{"mara@example.com": smtpErr}}
		mailer := NewTicketMailer(sender, repo, nopLogger{})

		err := mailer.NotifyTicketCreated(context.Background(), makeTicket(t, 1, authorization.RoleEmployee), requester)

		assert.ErrorIs(t, err, smtpErr)
		assert.Equal(t, []string{"alice@example.com", "milo@example.com"}, sender.recipients())
	})
}

// ---------------------------------------------------------------------------
// NotifyApprovalDecision
// ---------------------------------------------------------------------------

func TestTicketMailer_NotifyApprovalDecision(t *testing.T) {
	requester := func(t *testing.T) *user.User {
		return makeUser(t, 1, "Alice", "alice@example.com", authorization.RoleEmployee)
	}

	t.Run("approved ticket mails the requester", func(t *testing.T) {
		tk := makeTicket(t, 1, authorization.RoleEmployee)
		require.NoError(t, tk.Approve())
		sender := &fakeSender{}
		mailer := NewTicketMailer(sender, &fakeUserRepo{}, nopLogger{})

		err := mailer.NotifyApprovalDecision(context.Background(), tk, requester(t))

		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "alice@example.com", sender.sent[0].To)
		assert.Contains(t, sender.sent[0].Subject, "approved")
	})

	t.Run("rejected ticket mails the requester", func(t *testing.T) {
		tk := makeTicket(t, 1, authorization.RoleEmployee)
		require.NoError(t, tk.Reject())
		sender := &fakeSender{}
		mailer := NewTicketMailer(sender, &fakeUserRepo{}, nopLogger{})

		err := mailer.NotifyApprovalDecision(context.Background(), tk, requester(t))

		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		assert.Contains(t, sender.sent[0].Subject, "rejected")
	})

	t.Run("pending ticket sends nothing", func(t *testing.T) {
		sender := &fakeSender{}
		mailer := NewTicketMailer(sender, &fakeUserRepo{}, nopLogger{})

		err := mailer.NotifyApprovalDecision(context.Background(), makeTicket(t, 1, authorization.RoleEmployee), requester(t))

		require.NoError(t, err)
		assert.Empty(t, sender.sent)
	})
}
