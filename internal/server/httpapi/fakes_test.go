package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/memoriam-app/memoriam/internal/common"
	"github.com/memoriam-app/memoriam/internal/logging"
	authstate "github.com/memoriam-app/memoriam/internal/server/auth"
	"github.com/memoriam-app/memoriam/internal/server/config"
	"github.com/memoriam-app/memoriam/internal/server/models"
	"github.com/memoriam-app/memoriam/internal/server/services"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)     {}
func (nopLogger) Info(msg string, args ...any)      {}
func (nopLogger) Warn(msg string, args ...any)      {}
func (nopLogger) Error(msg string, args ...any)     {}
func (l nopLogger) With(args ...any) logging.Logger { return l }

type fakeAuth struct {
	tokens map[string]string // access token -> user id

	registerErr error
	loginErr    error
	refreshErr  error

	loggedOut []string
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{tokens: map[string]string{"valid-token": "u1"}}
}

func (f *fakeAuth) pair() *services.TokenPair {
	return &services.TokenPair{AccessToken: "valid-token", RefreshToken: "refresh-1"}
}

func (f *fakeAuth) Register(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error) {
	if f.registerErr != nil {
		return nil, nil, f.registerErr
	}
	return &models.User{ID: "u1", Email: email}, f.pair(), nil
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error) {
	if f.loginErr != nil {
		return nil, nil, f.loginErr
	}
	return &models.User{ID: "u1", Email: email}, f.pair(), nil
}

func (f *fakeAuth) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.pair(), nil
}

func (f *fakeAuth) Logout(ctx context.Context, refreshToken string) error {
	f.loggedOut = append(f.loggedOut, refreshToken)
	return nil
}

func (f *fakeAuth) UserID(token string) (string, error) {
	if id, ok := f.tokens[token]; ok {
		return id, nil
	}
	return "", common.ErrInvalidToken
}

type fakePeople struct {
	listOut []*models.Person
	listErr error

	addOut   *models.Person
	addErr   error
	addedIn  *models.Person
	addedBy  string
	portrait *services.Upload

	getOut *models.Person
	getErr error

	updateErr error
	updatedID string
	updatedIn *models.PersonUpdate

	galleryOut []string
	galleryErr error
	galleryIn  []*services.Upload
}

func (f *fakePeople) List(ctx context.Context) ([]*models.Person, error) {
	return f.listOut, f.listErr
}

func (f *fakePeople) Add(ctx context.Context, p *models.Person, portrait *services.Upload, ownerID string) (*models.Person, error) {
	f.addedIn, f.portrait, f.addedBy = p, portrait, ownerID
	if f.addErr != nil {
		return nil, f.addErr
	}
	if f.addOut != nil {
		return f.addOut, nil
	}
	p.ID = "p-new"
	return p, nil
}

func (f *fakePeople) Get(ctx context.Context, id string) (*models.Person, error) {
	return f.getOut, f.getErr
}

func (f *fakePeople) Update(ctx context.Context, id string, upd *models.PersonUpdate, portrait *services.Upload, ownerID string) error {
	f.updatedID, f.updatedIn, f.portrait = id, upd, portrait
	return f.updateErr
}

func (f *fakePeople) AddGalleryImages(ctx context.Context, personID, ownerID string, files []*services.Upload) ([]string, error) {
	f.galleryIn = files
	return f.galleryOut, f.galleryErr
}

type fakeTestimonials struct {
	addErr  error
	addedID string
	addedIn *models.Testimonial
	photo   *services.Upload
}

func (f *fakeTestimonials) Add(ctx context.Context, personID string, t *models.Testimonial, photo *services.Upload) error {
	f.addedID, f.addedIn, f.photo = personID, t, photo
	return f.addErr
}

type fakeQR struct {
	fetchOut []byte
	fetchErr error
}

func (f *fakeQR) Fetch(ctx context.Context, personID string) ([]byte, error) {
	return f.fetchOut, f.fetchErr
}

func (f *fakeQR) DownloadFilename(personName, personID string) string {
	return personName + "_" + personID + "_qr.png"
}

type fakeDrafts struct {
	getOut *models.HeroDraft
	getErr error
	putErr error
	putIn  *models.HeroDraft
}

func (f *fakeDrafts) Get(ctx context.Context, userID string) (*models.HeroDraft, error) {
	return f.getOut, f.getErr
}

func (f *fakeDrafts) Put(ctx context.Context, userID string, draft *models.HeroDraft) error {
	f.putIn = draft
	return f.putErr
}

type testServer struct {
	*Server
	auth         *fakeAuth
	people       *fakePeople
	testimonials *fakeTestimonials
	qr           *fakeQR
	drafts       *fakeDrafts
}

func newTestServer() *testServer {
	cfg := &config.Config{
		AccessTokenValidityDuration: time.Hour,
		CORSAllowedOrigins:          []string{"http://localhost:4200"},
	}
	state := authstate.NewState()
	state.MarkReady()

	a := newFakeAuth()
	p := &fakePeople{}
	tm := &fakeTestimonials{}
	q := &fakeQR{fetchOut: []byte("png")}
	d := &fakeDrafts{}

	s := NewServer(cfg, nopLogger{}, nil, state, a, p, tm, q, d)
	return &testServer{Server: s, auth: a, people: p, testimonials: tm, qr: q, drafts: d}
}

var errBoom = errors.New("boom")
