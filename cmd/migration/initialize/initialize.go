package initialize

import (
	"hrm/config"
	userController "hrm/internal/controllers/users"
	"hrm/internal/logger"
	. "hrm/internal/models"

	"gorm.io/gorm"
)

// InitializeTables creates the essential production rows: a default admin
// account when none exists. The password must be rotated on first login.
func InitializeTables(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Initializing essential production data")

	var count int64
	if err := db.Model(&User{}).Where("role = ?", RoleAdmin).Count(&count).Error; err != nil {
		return log.Err("failed to count admin users", err)
	}
	if count > 0 {
		log.Info("Admin account already present")
		return nil
	}

	hash, err := userController.HashPassword("changeme")
	if err != nil {
		return log.Err("failed to hash default admin password", err)
	}

	admin := User{
		FirstName: "Portal",
		LastName:  "Admin",
		Email:     "admin@riseandshine.example",
		Password:  hash,
		Role:      RoleAdmin,
		Active:    true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return log.Err("failed to create default admin", err)
	}

	log.Info("Table initialization complete")
	return nil
}
