package mappers

import (
	"fmt"

	"fixdesk/internal/domain/user"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/biztime"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		SID:          u.SID(),
		Username:     u.Username(),
		Role:         u.Role().String(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, err := authorization.ParseUserRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", model.ID, err)
	}

	u, err := user.ReconstructUser(
		model.ID,
		model.SID,
		model.Username,
		role,
		model.PasswordHash,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", model.ID, err)
	}
	return u, nil
}
