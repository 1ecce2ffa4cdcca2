package seed

import (
	"modreport/config"
	"modreport/internal/logger"
	. "modreport/internal/models"
	"modreport/internal/utils"

	"gorm.io/gorm"
)

// Seed creates a development admin and a demo MOD. Passwords are for local
// use only.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	users := []struct {
		user     User
		password string
	}{
		{
			user: User{
				Name:     "Admin User",
				Email:    "admin@example.com",
				JobTitle: "General Manager",
				IsAdmin:  true,
			},
			password: "password",
		},
		{
			user: User{
				Name:     "Demo MOD",
				Email:    "mod@example.com",
				JobTitle: "Front Office Manager",
				Timezone: "America/Chicago",
			},
			password: "password",
		},
	}

	for _, entry := range users {
		var existing User
		if err := db.First(&existing, "email = ?", entry.user.Email).Error; err == nil {
			log.Info("User already exists", "email", entry.user.Email)
			continue
		}

		hash, err := utils.HashPassword(entry.password)
		if err != nil {
			return log.Err("failed to hash seed password", err, "email", entry.user.Email)
		}
		entry.user.PasswordHash = hash

		log.Info("Seeding user", "email", entry.user.Email)
		if err := db.Create(&entry.user).Error; err != nil {
			return log.Err("failed to create user", err, "email", entry.user.Email)
		}
	}

	return nil
}
