// Package drafts persists in-progress hero sections so an editor can resume
// where they left off on another device.
package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/memoriam-app/memoriam/internal/common"
	"github.com/memoriam-app/memoriam/internal/dbx"
	"github.com/memoriam-app/memoriam/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.HeroDraft, error) {
	query := `
		SELECT payload
		FROM hero_drafts
		WHERE user_id = $1
	`
	var payload []byte
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	draft := &models.HeroDraft{}
	if err := json.Unmarshal(payload, draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

// Put upserts the draft, keeping one row per user.
func (r *PostgresRepository) Put(ctx context.Context, userID string, draft *models.HeroDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	query := `
		INSERT INTO hero_drafts (user_id, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, userID, payload); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
