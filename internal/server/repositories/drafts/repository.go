package drafts

import (
	"context"

	"github.com/memoriam-app/memoriam/internal/server/models"
)

// Repository stores per-user hero drafts, one draft per user.
type Repository interface {
	// Get returns common.ErrorNotFound when the user has no saved draft.
	Get(ctx context.Context, userID string) (*models.HeroDraft, error)
	// Put saves or replaces the user's draft.
	Put(ctx context.Context, userID string, draft *models.HeroDraft) error
}
