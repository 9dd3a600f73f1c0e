package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/memoriam-app/memoriam/internal/common"
	"github.com/memoriam-app/memoriam/internal/imaging"
	"github.com/memoriam-app/memoriam/internal/logging"
	"github.com/memoriam-app/memoriam/internal/server/models"
	"github.com/memoriam-app/memoriam/internal/server/repositories/repomanager"
)

// TestimonialService appends visitor tributes to a profile. Submissions are
// public: no account is required, and attached photos are stored under the
// anonymous owner prefix.
type TestimonialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       BlobStore
	logger      logging.Logger
}

func NewTestimonialService(db *sql.DB, m repomanager.RepositoryManager, blobs BlobStore, logger logging.Logger) *TestimonialService {
	return &TestimonialService{db: db, repomanager: m, blobs: blobs, logger: logger}
}

// Add validates and appends one testimonial. A photo, when present, is
// normalized with the tighter tribute limits and uploaded before the append;
// a photo failure aborts the whole submission so no half-written tribute
// appears on the page.
func (s *TestimonialService) Add(ctx context.Context, personID string, t *models.Testimonial, photo *Upload) error {
	if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Message) == "" {
		return fmt.Errorf("%w: name and message are required", common.ErrorValidation)
	}
	// the id lands in a uuid column; a malformed one is an unknown profile,
	// not a server fault
	if _, err := uuid.Parse(personID); err != nil {
		return common.ErrorNotFound
	}
	if t.CreatedAt == "" {
		t.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if photo != nil {
		res, err := normalizeImage(photo.Data, imaging.TestimonialOptions())
		if err != nil {
			return err
		}
		key, err := s.blobs.Upload(ctx, "", photo.Name, res.Data, res.MIME, nil)
		if err != nil {
			return fmt.Errorf("error uploading photo: %v", err)
		}
		url, err := s.blobs.DownloadURL(ctx, key)
		if err != nil {
			return fmt.Errorf("error presigning photo: %v", err)
		}
		t.PhotoURL = url
	}

	repo := s.repomanager.People(s.db)
	if err := repo.AppendTestimonial(ctx, personID, t); err != nil {
		return fmt.Errorf("error appending testimonial: %v", err)
	}

	s.logger.Info("testimonial added", "person", personID, "from", t.Name)
	return nil
}
