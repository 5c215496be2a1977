package usecases

import (
	"context"
	stderrors "errors"

	"fixdesk/internal/domain/user"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserSID  string
	ActorSID string
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	// An administrator locking themselves out is unrecoverable on a
	// single-admin install.
	if cmd.UserSID == cmd.ActorSID {
		return errors.NewForbiddenError("cannot delete your own account")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserSID); err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserSID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserSID, "by", cmd.ActorSID)
	return nil
}
