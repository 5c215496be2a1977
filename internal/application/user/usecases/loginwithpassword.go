package usecases

import (
	"context"
	stderrors "errors"

	"fixdesk/internal/application/user/dto"
	"fixdesk/internal/domain/user"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *dto.UserDTO `json:"user"`
}

type LoginWithPasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			// Same message as a bad password so usernames cannot be probed.
			uc.logger.Warnw("login attempt for unknown user", "username", cmd.Username)
			return nil, errors.NewUnauthorizedError("invalid username or password")
		}
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, err := uc.tokens.Generate(u.SID(), u.Username(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("user logged in", "user_id", u.SID(), "role", u.Role().String())

	return &LoginResult{
		Token: token,
		User:  dto.ToUserDTO(u),
	}, nil
}
