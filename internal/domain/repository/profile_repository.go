package repository

import (
	"context"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
)

// ProfileRepository defines profile persistence. Create and Update write the
// whole profile row, sub-records included, mirroring the document the API
// exposes.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	List(ctx context.Context) ([]entity.Profile, error)
	Create(ctx context.Context, p *entity.Profile) error
	Update(ctx context.Context, p *entity.Profile) error
	// DeleteWithUser removes the profile and its owning user in one
	// transaction, so a crash cannot leave an orphan of either kind.
	DeleteWithUser(ctx context.Context, userID string) error
}
