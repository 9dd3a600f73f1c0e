// Package people provides the PostgreSQL-backed repository for memorial
// profiles. Testimonials and gallery URLs live in jsonb columns so appends
// stay single-statement and atomic.
package people

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/memoriam-app/memoriam/internal/common"
	"github.com/memoriam-app/memoriam/internal/dbx"
	"github.com/memoriam-app/memoriam/internal/server/models"
)

const personColumns = `id, name, dob, about, photo_url, primary_color, secondary_color, gender, testimonials, gallery, created_at, created_by`

// PostgresRepository implements profile storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all profiles ordered by descending creation time.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Person
	for rows.Next() {
		p, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts the profile and returns it with the server-assigned id and
// creation timestamp filled in.
func (r *PostgresRepository) Create(ctx context.Context, p *models.Person) (*models.Person, error) {
	query := `
		INSERT INTO people (name, dob, about, photo_url, primary_color, secondary_color, gender, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		p.Name, nullable(p.DOB), nullable(p.About), nullable(p.PhotoURL),
		nullable(p.Primary), nullable(p.Secondary), nullable(p.Gender), nullable(p.CreatedBy),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// Get fetches one profile by id, returning common.ErrorNotFound when absent.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanPerson(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update applies the non-nil fields of upd to the profile. A nil-only update
// is a no-op. Returns common.ErrorNotFound when the id does not exist.
func (r *PostgresRepository) Update(ctx context.Context, id string, upd *models.PersonUpdate) error {
	var sets []string
	var args []any
	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("name", upd.Name)
	add("dob", upd.DOB)
	add("about", upd.About)
	add("photo_url", upd.PhotoURL)
	add("primary_color", upd.Primary)
	add("secondary_color", upd.Secondary)
	add("gender", upd.Gender)

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE people SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// AppendTestimonial appends one testimonial in a single union-style write.
// The profile row is created when it does not exist, so the first testimonial
// for an unknown id yields a one-element list.
func (r *PostgresRepository) AppendTestimonial(ctx context.Context, id string, t *models.Testimonial) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal testimonial: %w", err)
	}

	query := `
		INSERT INTO people (id, testimonials)
		VALUES ($1, jsonb_build_array($2::jsonb))
		ON CONFLICT (id)
		DO UPDATE SET testimonials = people.testimonials || EXCLUDED.testimonials
	`
	if _, err := r.db.ExecContext(ctx, query, id, payload); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// AppendGallery appends urls to the gallery in one write, preserving the
// existing order. Returns common.ErrorNotFound when the id does not exist.
func (r *PostgresRepository) AppendGallery(ctx context.Context, id string, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	payload, err := json.Marshal(urls)
	if err != nil {
		return fmt.Errorf("marshal gallery: %w", err)
	}

	query := `UPDATE people SET gallery = gallery || $2::jsonb WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, payload)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func scanPerson(scan func(dest ...any) error) (*models.Person, error) {
	var p models.Person
	var dob, about, photoURL, primary, secondary, gender, createdBy sql.NullString
	var testimonials, gallery []byte

	err := scan(&p.ID, &p.Name, &dob, &about, &photoURL, &primary, &secondary,
		&gender, &testimonials, &gallery, &p.CreatedAt, &createdBy)
	if err != nil {
		return nil, err
	}

	p.DOB = dob.String
	p.About = about.String
	p.PhotoURL = photoURL.String
	p.Primary = primary.String
	p.Secondary = secondary.String
	p.Gender = gender.String
	p.CreatedBy = createdBy.String

	if len(testimonials) > 0 {
		if err := json.Unmarshal(testimonials, &p.Testimonials); err != nil {
			return nil, fmt.Errorf("decode testimonials: %w", err)
		}
	}
	if len(gallery) > 0 {
		if err := json.Unmarshal(gallery, &p.Gallery); err != nil {
			return nil, fmt.Errorf("decode gallery: %w", err)
		}
	}
	return &p, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
