package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/memoriam-app/memoriam/internal/common"
	"github.com/memoriam-app/memoriam/internal/server/models"
	"github.com/memoriam-app/memoriam/internal/server/repositories/repomanager"
)

// DraftService stores the hero section an editor is still working on, one
// draft per user.
type DraftService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDraftService(db *sql.DB, m repomanager.RepositoryManager) *DraftService {
	return &DraftService{db: db, repomanager: m}
}

// Get returns the user's draft, or (nil, nil) when none is saved.
func (s *DraftService) Get(ctx context.Context, userID string) (*models.HeroDraft, error) {
	repo := s.repomanager.Drafts(s.db)
	draft, err := repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return draft, nil
}

// Put saves or replaces the user's draft.
func (s *DraftService) Put(ctx context.Context, userID string, draft *models.HeroDraft) error {
	repo := s.repomanager.Drafts(s.db)
	if err := repo.Put(ctx, userID, draft); err != nil {
		return fmt.Errorf("error saving draft: %v", err)
	}
	return nil
}
