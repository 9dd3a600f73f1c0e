// Package httpapi exposes the memorial service over HTTP: a JSON/multipart
// API for the app, public testimonial and share endpoints, and guarded page
// routes.
package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memoriam-app/memoriam/internal/common"
	"github.com/memoriam-app/memoriam/internal/imaging"
	"github.com/memoriam-app/memoriam/internal/logging"
	"github.com/memoriam-app/memoriam/internal/server/auth"
	"github.com/memoriam-app/memoriam/internal/server/config"
	"github.com/memoriam-app/memoriam/internal/server/models"
	"github.com/memoriam-app/memoriam/internal/server/services"
)

// AuthService is the slice of services.UserService the handlers need.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	UserID(token string) (string, error)
}

type PeopleService interface {
	List(ctx context.Context) ([]*models.Person, error)
	Add(ctx context.Context, p *models.Person, portrait *services.Upload, ownerID string) (*models.Person, error)
	Get(ctx context.Context, id string) (*models.Person, error)
	Update(ctx context.Context, id string, upd *models.PersonUpdate, portrait *services.Upload, ownerID string) error
	AddGalleryImages(ctx context.Context, personID, ownerID string, files []*services.Upload) ([]string, error)
}

type TestimonialService interface {
	Add(ctx context.Context, personID string, t *models.Testimonial, photo *services.Upload) error
}

type QRService interface {
	Fetch(ctx context.Context, personID string) ([]byte, error)
	DownloadFilename(personName, personID string) string
}

type DraftService interface {
	Get(ctx context.Context, userID string) (*models.HeroDraft, error)
	Put(ctx context.Context, userID string, draft *models.HeroDraft) error
}

// Server bundles the services behind the HTTP surface.
type Server struct {
	cfg          *config.Config
	logger       logging.Logger
	db           *sql.DB
	state        *auth.State
	auth         AuthService
	people       PeopleService
	testimonials TestimonialService
	qr           QRService
	drafts       DraftService
}

func NewServer(cfg *config.Config, logger logging.Logger, db *sql.DB, state *auth.State,
	authSvc AuthService, people PeopleService, testimonials TestimonialService,
	qr QRService, drafts DraftService) *Server {
	return &Server{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		state:        state,
		auth:         authSvc,
		people:       people,
		testimonials: testimonials,
		qr:           qr,
		drafts:       drafts,
	}
}

// renderError maps service errors onto HTTP statuses.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, imaging.ErrTooLarge),
		errors.Is(err, imaging.ErrDecode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		s.logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
