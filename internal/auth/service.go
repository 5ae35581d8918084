package auth

import (
	"context"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/projecthub/projecthub/internal/config"
)

// Service answers authorization questions and runs the catalog and delegation actions.
// Every mutation runs in its own transaction; the service holds no locks.
type Service struct {
	db        *gorm.DB
	validator *validator.Validate
	public    *publicCache
	pageSize  int
}

// NewService creates a new auth service. Zero config values fall back to defaults.
func NewService(db *gorm.DB, cfg config.Authorization) *Service {
	if db == nil {
		panic(ErrDBNil)
	}

	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = config.DefaultPageSize
	}

	return &Service{
		db:        db,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		public:    newPublicCache(cfg.PublicCacheSize, cfg.PublicCacheTTL),
		pageSize:  pageSize,
	}
}

func (s *Service) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *Service) validate(in any) error {
	if err := s.validator.Struct(in); err != nil {
		return validationError(err)
	}

	return nil
}
