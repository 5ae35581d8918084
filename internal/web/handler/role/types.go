package role

import (
	"context"

	"github.com/projecthub/projecthub/internal/auth"
	"github.com/projecthub/projecthub/internal/db/models"
)

type changeFunc func(ctx context.Context, actor auth.Actor, roleID uint64, permissionIDs []uint64) (*models.Role, error)
