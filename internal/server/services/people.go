package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/memoriam-app/memoriam/internal/blob"
	"github.com/memoriam-app/memoriam/internal/common"
	"github.com/memoriam-app/memoriam/internal/imaging"
	"github.com/memoriam-app/memoriam/internal/logging"
	"github.com/memoriam-app/memoriam/internal/server/models"
	"github.com/memoriam-app/memoriam/internal/server/repositories/repomanager"
)

// BlobStore is the slice of blob.Store the services need.
type BlobStore interface {
	Upload(ctx context.Context, owner, filename string, data []byte, contentType string, progress blob.ProgressFunc) (string, error)
	DownloadURL(ctx context.Context, key string) (string, error)
}

// normalizeImage is a seam so tests can skip real image decoding.
var normalizeImage = imaging.Normalize

// Upload carries one raw image received from a client.
type Upload struct {
	Name string
	Data []byte
}

// PeopleService implements memorial profile use cases: listing, creation with
// portrait processing, lookups, partial edits, and concurrent gallery uploads.
type PeopleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       BlobStore
	logger      logging.Logger
}

func NewPeopleService(db *sql.DB, m repomanager.RepositoryManager, blobs BlobStore, logger logging.Logger) *PeopleService {
	return &PeopleService{db: db, repomanager: m, blobs: blobs, logger: logger}
}

// List returns every profile, newest first.
func (s *PeopleService) List(ctx context.Context) ([]*models.Person, error) {
	repo := s.repomanager.People(s.db)
	return repo.List(ctx)
}

// Add creates a profile. When a portrait upload is provided it is normalized,
// stored, and its download URL recorded on the profile before the insert.
func (s *PeopleService) Add(ctx context.Context, p *models.Person, portrait *Upload, ownerID string) (*models.Person, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}

	if portrait != nil {
		url, err := s.storeImage(ctx, portrait, imaging.PortraitOptions(), ownerID)
		if err != nil {
			return nil, err
		}
		p.PhotoURL = url
	}

	p.CreatedBy = ownerID
	repo := s.repomanager.People(s.db)
	created, err := repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("error creating person: %v", err)
	}
	return created, nil
}

// Get returns the profile, or (nil, nil) when the id is malformed or unknown.
// Absence is an expected outcome here, not a failure.
func (s *PeopleService) Get(ctx context.Context, id string) (*models.Person, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	repo := s.repomanager.People(s.db)
	p, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Update applies a partial edit. A replacement portrait, when present, is
// processed like the one at creation and its URL joins the update. Unknown
// ids yield common.ErrorNotFound.
func (s *PeopleService) Update(ctx context.Context, id string, upd *models.PersonUpdate, portrait *Upload, ownerID string) error {
	if portrait != nil {
		url, err := s.storeImage(ctx, portrait, imaging.PortraitOptions(), ownerID)
		if err != nil {
			return err
		}
		upd.PhotoURL = &url
	}
	repo := s.repomanager.People(s.db)
	return repo.Update(ctx, id, upd)
}

// AddGalleryImages normalizes and stores the uploads concurrently, then
// appends their URLs to the gallery in one write. Results keep the order of
// the input files regardless of which upload finishes first. The first
// failure wins; nothing is appended in that case.
func (s *PeopleService) AddGalleryImages(ctx context.Context, personID, ownerID string, files []*Upload) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	urls := make([]string, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f *Upload) {
			defer wg.Done()
			urls[i], errs[i] = s.storeImage(ctx, f, imaging.PortraitOptions(), ownerID)
		}(i, f)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	repo := s.repomanager.People(s.db)
	if err := repo.AppendGallery(ctx, personID, urls); err != nil {
		return nil, err
	}
	return urls, nil
}

func (s *PeopleService) storeImage(ctx context.Context, up *Upload, opts imaging.Options, ownerID string) (string, error) {
	res, err := normalizeImage(up.Data, opts)
	if err != nil {
		return "", err
	}

	name := up.Name
	if ext := res.Ext(); ext != "" {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + "." + ext
	}

	var lastPct int64 = -1
	key, err := s.blobs.Upload(ctx, ownerID, name, res.Data, res.MIME, func(written, total int64) {
		if total <= 0 {
			return
		}
		if pct := written * 100 / total; pct != lastPct {
			lastPct = pct
			s.logger.Debug("upload progress", "file", name, "pct", pct)
		}
	})
	if err != nil {
		return "", fmt.Errorf("error uploading image: %v", err)
	}

	url, err := s.blobs.DownloadURL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("error presigning image: %v", err)
	}
	return url, nil
}
