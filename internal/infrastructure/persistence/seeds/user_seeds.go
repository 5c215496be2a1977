package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"fixdesk/internal/infrastructure/auth"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/logger"

	userdomain "fixdesk/internal/domain/user"
)

// SeedDefaultAdmin creates the bootstrap administrator account when the
// users table is empty, so a fresh install can be logged into at all.
func SeedDefaultAdmin(db *gorm.DB, hasher *auth.BcryptPasswordHasher) error {
	var count int64
	if err := db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash("1234")
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin, err := userdomain.NewUser("admin", authorization.RoleAdmin, hash)
	if err != nil {
		return fmt.Errorf("failed to build default admin: %w", err)
	}

	model := mappers.NewUserMapper().ToModel(admin)
	if err := db.Create(model).Error; err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	logger.Warn("seeded default admin account, change its password",
		"username", "admin")
	return nil
}
