package usecases

import (
	"context"
	stderrors "errors"

	"fixdesk/internal/application/user/dto"
	"fixdesk/internal/domain/user"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

const minPasswordLength = 4

type RegisterUserCommand struct {
	Username string
	Password string
	Role     string
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing register user use case", "username", cmd.Username)

	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 4 characters")
	}

	role, err := authorization.ParseUserRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError("invalid role")
	}

	if _, err := uc.userRepo.GetByUsername(ctx, cmd.Username); err == nil {
		return nil, errors.NewConflictError("username is already taken")
	} else if !stderrors.Is(err, user.ErrUserNotFound) {
		uc.logger.Errorw("failed to check username", "error", err)
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Username, role, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.SID(), "role", newUser.Role().String())

	return dto.ToUserDTO(newUser), nil
}
