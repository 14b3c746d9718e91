package device

import "context"

type DeviceLoginRepository interface {
	Save(ctx context.Context, login *DeviceLogin) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]*DeviceLogin, error)
}
