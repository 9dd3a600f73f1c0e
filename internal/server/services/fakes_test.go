package services

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/memoriam-app/memoriam/internal/blob"
	"github.com/memoriam-app/memoriam/internal/dbx"
	"github.com/memoriam-app/memoriam/internal/logging"
	"github.com/memoriam-app/memoriam/internal/server/models"
	draftsrepo "github.com/memoriam-app/memoriam/internal/server/repositories/drafts"
	peoplerepo "github.com/memoriam-app/memoriam/internal/server/repositories/people"
	refreshtokensrepo "github.com/memoriam-app/memoriam/internal/server/repositories/refreshtokens"
	usersrepo "github.com/memoriam-app/memoriam/internal/server/repositories/users"
)

// --- shared fakes for service tests ---

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)     {}
func (nopLogger) Info(msg string, args ...any)      {}
func (nopLogger) Warn(msg string, args ...any)      {}
func (nopLogger) Error(msg string, args ...any)     {}
func (l nopLogger) With(args ...any) logging.Logger { return l }

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "u-new"
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr    error
	createErr error

	created []string
	deleted []string
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	f.created = append(f.created, token)
	return f.createErr
}
func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}
func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.delErr
}

type fakePeopleRepo struct {
	listOut []*models.Person
	listErr error

	createOut *models.Person
	createErr error
	createdIn *models.Person

	getOut *models.Person
	getErr error

	updateErr error
	updatedID string
	updatedIn *models.PersonUpdate

	appendTestimonialErr error
	appendedTestimonial  *models.Testimonial

	appendGalleryErr  error
	appendedGalleryID string
	appendedGallery   []string
}

func (f *fakePeopleRepo) List(ctx context.Context) ([]*models.Person, error) {
	return f.listOut, f.listErr
}
func (f *fakePeopleRepo) Create(ctx context.Context, p *models.Person) (*models.Person, error) {
	f.createdIn = p
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	p.ID = "p-new"
	return p, nil
}
func (f *fakePeopleRepo) Get(ctx context.Context, id string) (*models.Person, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakePeopleRepo) Update(ctx context.Context, id string, upd *models.PersonUpdate) error {
	f.updatedID, f.updatedIn = id, upd
	return f.updateErr
}
func (f *fakePeopleRepo) AppendTestimonial(ctx context.Context, id string, t *models.Testimonial) error {
	f.appendedTestimonial = t
	return f.appendTestimonialErr
}
func (f *fakePeopleRepo) AppendGallery(ctx context.Context, id string, urls []string) error {
	f.appendedGalleryID, f.appendedGallery = id, urls
	return f.appendGalleryErr
}

type fakeDraftsRepo struct {
	getOut *models.HeroDraft
	getErr error

	putErr error
	putIn  *models.HeroDraft
}

func (f *fakeDraftsRepo) Get(ctx context.Context, userID string) (*models.HeroDraft, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeDraftsRepo) Put(ctx context.Context, userID string, draft *models.HeroDraft) error {
	f.putIn = draft
	return f.putErr
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	r  *fakeRefreshRepo
	p  *fakePeopleRepo
	dr *fakeDraftsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) People(db dbx.DBTX) peoplerepo.Repository               { return m.p }
func (m *fakeRepoManager) Drafts(db dbx.DBTX) draftsrepo.Repository               { return m.dr }

type uploadCall struct {
	owner       string
	filename    string
	data        []byte
	contentType string
}

type fakeBlobStore struct {
	mu        sync.Mutex
	uploads   []uploadCall
	uploadErr error
	urlErr    error
	delay     map[string]time.Duration
}

func (f *fakeBlobStore) Upload(ctx context.Context, owner, filename string, data []byte, contentType string, progress blob.ProgressFunc) (string, error) {
	if f.delay != nil {
		time.Sleep(f.delay[filename])
	}
	f.mu.Lock()
	f.uploads = append(f.uploads, uploadCall{owner, filename, data, contentType})
	f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if progress != nil {
		progress(int64(len(data)), int64(len(data)))
	}
	return "key/" + filename, nil
}

func (f *fakeBlobStore) DownloadURL(ctx context.Context, key string) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return "https://cdn.example/" + key, nil
}

func newSQLMockDB(t interface {
	Helper()
	Fatalf(string, ...any)
}) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}
