package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/user"
	"fixdesk/internal/shared/authorization"
	apperrors "fixdesk/internal/shared/errors"
)

func TestDeleteUserUseCase_Execute_Success(t *testing.T) {
	deletedSID := ""
	mockRepo := &mockUserRepository{
		DeleteFunc: func(ctx context.Context, sid string) error {
			deletedSID = sid
			return nil
		},
	}

	useCase := NewDeleteUserUseCase(mockRepo, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteUserCommand{
		UserSID:  "usr_target",
		ActorSID: "usr_admin01",
	})

	require.NoError(t, err)
	assert.Equal(t, "usr_target", deletedSID)
}

func TestDeleteUserUseCase_Execute_SelfDeletionForbidden(t *testing.T) {
	deleteCalled := false
	mockRepo := &mockUserRepository{
		DeleteFunc: func(ctx context.Context, sid string) error {
			deleteCalled = true
			return nil
		},
	}

	useCase := NewDeleteUserUseCase(mockRepo, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteUserCommand{
		UserSID:  "usr_admin01",
		ActorSID: "usr_admin01",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
	assert.False(t, deleteCalled)
}

func TestDeleteUserUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockUserRepository{
		DeleteFunc: func(ctx context.Context, sid string) error {
			return user.ErrUserNotFound
		},
	}

	useCase := NewDeleteUserUseCase(mockRepo, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteUserCommand{
		UserSID:  "usr_missing",
		ActorSID: "usr_admin01",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListUsersUseCase_Execute(t *testing.T) {
	users := []*user.User{
		existingUser(t, "admin", authorization.RoleAdmin),
		existingUser(t, "prod_lead", authorization.RoleProduction),
	}

	mockRepo := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*user.User, error) {
			return users, nil
		},
	}

	useCase := NewListUsersUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "admin", result[0].Username)
	assert.Equal(t, "prod_lead", result[1].Username)
}
