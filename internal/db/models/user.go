package models

import (
	"slices"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User type tags used by the product to classify actors.
const (
	// UserTypeFacilitator marks users running projects on behalf of companies.
	UserTypeFacilitator = "facilitator"
	// UserTypeDonor marks users funding projects.
	UserTypeDonor = "donor"
)

// User represents an actor of the system.
// Users own companies and projects, receive authorizations and may carry the global admin flag.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Username is the unique username.
	Username string `gorm:"unique;size:100;not null" json:"username"`
	// Email is the user's email address.
	Email string `gorm:"size:255;not null" json:"email"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255" json:"-"`
	// Admin bypasses every authorization check when set.
	Admin bool `gorm:"not null;default:false" json:"admin"`
	// Types holds the user's type tags (e.g. facilitator, donor).
	Types []string `gorm:"serializer:json;type:text" json:"types"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// ActorID returns the id used as authorized_id on authorization records.
func (u *User) ActorID() uint64 {
	return u.ID
}

// IsAdmin reports whether the user carries the global admin flag.
func (u *User) IsAdmin() bool {
	return u.Admin
}

// HasType reports whether the user is tagged with the given type.
func (u *User) HasType(tag string) bool {
	return slices.Contains(u.Types, tag)
}

// String returns a label used in log lines and error messages.
func (u *User) String() string {
	if u.Username != "" {
		return u.Username
	}

	return "user#" + uitoa(u.ID)
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hash.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
