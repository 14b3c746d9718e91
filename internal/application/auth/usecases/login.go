package usecases

import (
	"context"
	"time"

	"github.com/assetdesk/assetdesk/internal/domain/device"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email       string
	Password    string
	Fingerprint string
	IPAddress   string
	UserAgent   string
}

type LoginResult struct {
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
	UserID     uint      `json:"user_id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
}

type LoginUseCase struct {
	userRepo   user.UserRepository
	deviceRepo device.DeviceLoginRepository
	verifier   PasswordVerifier
	tokens     TokenIssuer
	presence   PresenceRecorder
	logger     logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	deviceRepo device.DeviceLoginRepository,
	verifier PasswordVerifier,
	tokens TokenIssuer,
	presence PresenceRecorder,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		deviceRepo: deviceRepo,
		verifier:   verifier,
		tokens:     tokens,
		presence:   presence,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		// A wrong email and a wrong password must be indistinguishable.
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.verifier.Verify(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email, "ip", cmd.IPAddress)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, err := uc.tokens.Issue(u.ID(), u.Role(), u.Department())
	if err != nil {
		uc.logger.Errorw("token issuance failed", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	uc.recordDeviceLogin(ctx, u.ID(), cmd)

	if err := uc.presence.Heartbeat(ctx, u.ID()); err != nil {
		uc.logger.Warnw("failed to mark user online", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "ip", cmd.IPAddress)

	return &LoginResult{
		Token:      token,
		ExpiresAt:  expiresAt,
		UserID:     u.ID(),
		Name:       u.Name(),
		Role:       u.Role().String(),
		Department: u.Department(),
	}, nil
}

// recordDeviceLogin keeps the login audit trail. Audit failures never
// block a successful login.
func (uc *LoginUseCase) recordDeviceLogin(ctx context.Context, userID uint, cmd LoginCommand) {
	login, err := device.NewDeviceLogin(userID, cmd.Fingerprint, cmd.IPAddress, cmd.UserAgent)
	if err != nil {
		uc.logger.Warnw("device login record rejected", "user_id", userID, "error", err)
		return
	}
	if err := uc.deviceRepo.Save(ctx, login); err != nil {
		uc.logger.Warnw("failed to save device login", "user_id", userID, "error", err)
	}
}
