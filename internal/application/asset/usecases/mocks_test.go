package usecases

import (
	"context"

	"github.com/assetdesk/assetdesk/internal/domain/asset"
	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

type mockAssetRepository struct {
	SaveFunc          func(ctx context.Context, a *asset.Asset) error
	UpdateFunc        func(ctx context.Context, a *asset.Asset) error
	GetByIDFunc       func(ctx context.Context, assetID uint) (*asset.Asset, error)
	GetByUserIDFunc   func(ctx context.Context, userID uint) ([]*asset.Asset, error)
	ListFunc          func(ctx context.Context, filter asset.AssetFilter) ([]*asset.Asset, int64, error)
	CountByStatusFunc func(ctx context.Context) (map[string]int64, error)
}

func (m *mockAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) GetByID(ctx context.Context, assetID uint) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, assetID)
	}
	return nil, nil
}

func (m *mockAssetRepository) GetByUserID(ctx context.Context, userID uint) ([]*asset.Asset, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAssetRepository) List(ctx context.Context, filter asset.AssetFilter) ([]*asset.Asset, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAssetRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc                        func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc                     func(ctx context.Context, email string) (*user.User, error)
	ListActiveManagersByDepartmentFunc func(ctx context.Context, department string) ([]*user.User, error)
	ListActiveAdminsFunc               func(ctx context.Context) ([]*user.User, error)
	ListFunc                           func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListActiveManagersByDepartment(ctx context.Context, department string) ([]*user.User, error) {
	if m.ListActiveManagersByDepartmentFunc != nil {
		return m.ListActiveManagersByDepartmentFunc(ctx, department)
	}
	return nil, nil
}

func (m *mockUserRepository) ListActiveAdmins(ctx context.Context) ([]*user.User, error) {
	if m.ListActiveAdminsFunc != nil {
		return m.ListActiveAdminsFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
