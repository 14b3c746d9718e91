package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetdesk/assetdesk/internal/domain/user"
	"github.com/assetdesk/assetdesk/internal/shared/authorization"
	"github.com/assetdesk/assetdesk/internal/shared/errors"
)

func TestListOnlineUsersUseCase_Execute_Success(t *testing.T) {
	presence := &mockPresence{
		ListOnlineFunc: func(ctx context.Context) ([]uint, error) {
			return []uint{5, 9}, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return activeUser(t, id, authorization.RoleEmployee), nil
		},
	}

	uc := NewListOnlineUsersUseCase(presence, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListOnlineUsersQuery{ActorRole: authorization.RoleAdmin})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, uint(5), result.Users[0].ID)
	assert.Equal(t, uint(9), result.Users[1].ID)
}

func TestListOnlineUsersUseCase_Execute_NonAdminForbidden(t *testing.T) {
	uc := NewListOnlineUsersUseCase(&mockPresence{}, &mockUserRepository{}, &mockLogger{})

	for _, role := range []authorization.UserRole{authorization.RoleEmployee, authorization.RoleManager} {
		_, err := uc.Execute(context.Background(), ListOnlineUsersQuery{ActorRole: role})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	}
}

func TestListOnlineUsersUseCase_Execute_SkipsUnresolvableUsers(t *testing.T) {
	presence := &mockPresence{
		ListOnlineFunc: func(ctx context.Context) ([]uint, error) {
			return []uint{5, 404}, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id == 404 {
				return nil, fmt.Errorf("record not found")
			}
			return activeUser(t, id, authorization.RoleEmployee), nil
		},
	}

	uc := NewListOnlineUsersUseCase(presence, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListOnlineUsersQuery{ActorRole: authorization.RoleAdmin})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, uint(5), result.Users[0].ID)
}
