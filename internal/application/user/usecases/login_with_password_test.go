package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/user"
	"fixdesk/internal/shared/authorization"
	apperrors "fixdesk/internal/shared/errors"
)

func TestLoginWithPasswordUseCase_Execute_Success(t *testing.T) {
	admin := existingUser(t, "admin", authorization.RoleAdmin)

	mockRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			require.Equal(t, "admin", username)
			return admin, nil
		},
	}
	mockTokens := &mockTokenIssuer{
		GenerateFunc: func(userSID, username string, role authorization.UserRole) (string, error) {
			assert.Equal(t, admin.SID(), userSID)
			assert.Equal(t, authorization.RoleAdmin, role)
			return "signed-token", nil
		},
	}

	useCase := NewLoginWithPasswordUseCase(mockRepo, &mockHasher{}, mockTokens, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginWithPasswordCommand{
		Username: "admin",
		Password: "1234",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "signed-token", result.Token)
	require.NotNil(t, result.User)
	assert.Equal(t, admin.SID(), result.User.ID)
	assert.Equal(t, "admin", result.User.Role)
}

func TestLoginWithPasswordUseCase_Execute_WrongPassword(t *testing.T) {
	admin := existingUser(t, "admin", authorization.RoleAdmin)

	mockRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return admin, nil
		},
	}
	mockHash := &mockHasher{
		VerifyFunc: func(password, hash string) error {
			return fmt.Errorf("password verification failed")
		},
	}

	useCase := NewLoginWithPasswordUseCase(mockRepo, mockHash, &mockTokenIssuer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginWithPasswordCommand{
		Username: "admin",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginWithPasswordUseCase_Execute_UnknownUser(t *testing.T) {
	useCase := NewLoginWithPasswordUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginWithPasswordCommand{
		Username: "ghost",
		Password: "password",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	// Unknown user and bad password are indistinguishable to the caller.
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, "invalid username or password", appErr.Message)
}

func TestLoginWithPasswordUseCase_Execute_MissingFields(t *testing.T) {
	useCase := NewLoginWithPasswordUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenIssuer{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), LoginWithPasswordCommand{Username: "", Password: "x"})
	require.Error(t, err)

	_, err = useCase.Execute(context.Background(), LoginWithPasswordCommand{Username: "x", Password: ""})
	require.Error(t, err)
}
