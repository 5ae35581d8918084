package daemon

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/projecthub/projecthub/internal/auth"
	"github.com/projecthub/projecthub/internal/config"
	"github.com/projecthub/projecthub/internal/db/models"
	"github.com/projecthub/projecthub/internal/uniuri"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@localhost"
)

// Seed creates the admin account on an empty users table and the default permission catalog.
// Running it again changes nothing.
func Seed(cfg *config.Config, db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		admin, err := seedAdmin(cfg.Seed, tx)
		if err != nil {
			return err
		}

		return seedCatalog(tx, admin)
	})
}

func seedAdmin(s config.Seed, tx *gorm.DB) (*models.User, error) {
	var count int64
	if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, err
	}

	if count > 0 {
		var admin models.User

		err := tx.Where("admin = ?", true).Order("id ASC").First(&admin).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Msg("no admin user found, default catalog is owned by nobody")
			return &models.User{}, nil
		}

		return &admin, err
	}

	admin := &models.User{
		Username: s.AdminUsername,
		Email:    s.AdminEmail,
		Admin:    true,
	}

	if admin.Username == "" {
		admin.Username = defaultAdminUsername
	}

	if admin.Email == "" {
		admin.Email = defaultAdminEmail
	}

	password := s.AdminPassword
	if password == "" {
		password = uniuri.Password()

		log.Warn().Str("username", admin.Username).Str("password", password).
			Msg("generated initial admin password, change it after the first login")
	}

	admin.Password = models.HashPassword(password)

	if err := tx.Create(admin).Error; err != nil {
		return nil, err
	}

	log.Info().Uint64("id", admin.ID).Str("username", admin.Username).Msg("admin user created")

	return admin, nil
}

func seedCatalog(tx *gorm.DB, admin *models.User) error {
	for _, entry := range auth.DefaultCatalog {
		perm := models.Permission{
			Name:        entry.Name,
			Description: entry.Description,
			Public:      entry.Public,
			CreatorID:   admin.ID,
		}

		err := tx.Where("name = ?", entry.Name).
			Attrs(perm).
			FirstOrCreate(&perm).Error
		if err != nil {
			return err
		}
	}

	return nil
}
