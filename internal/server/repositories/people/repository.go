package people

import (
	"context"

	"github.com/memoriam-app/memoriam/internal/server/models"
)

// Repository is the persistence surface for memorial profiles. There is no
// delete operation; profiles are only created, read and amended.
type Repository interface {
	// List returns every profile, newest first.
	List(ctx context.Context) ([]*models.Person, error)
	// Create inserts a profile and fills in the server-assigned id and
	// creation timestamp.
	Create(ctx context.Context, p *models.Person) (*models.Person, error)
	// Get returns common.ErrorNotFound when no profile has the id.
	Get(ctx context.Context, id string) (*models.Person, error)
	// Update applies the non-nil fields of upd.
	Update(ctx context.Context, id string, upd *models.PersonUpdate) error
	// AppendTestimonial atomically appends one testimonial, creating the
	// profile row if it does not exist yet.
	AppendTestimonial(ctx context.Context, id string, t *models.Testimonial) error
	// AppendGallery appends urls to the gallery list in one write.
	AppendGallery(ctx context.Context, id string, urls []string) error
}
