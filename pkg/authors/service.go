package authors

import (
	"context"
	"database/sql"
	"time"

	"github.com/DozzyMontalo/locallibrary/pkg/errcodes"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveAuthorOptions struct {
	ID           *int
	IncludeBooks bool
}

type UpdateAuthorOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateAuthor(ctx context.Context, author *models.Author) error {
	now := time.Now()
	if author.CreatedAt.IsZero() {
		author.CreatedAt = now
	}
	author.UpdatedAt = author.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(author).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveAuthor(ctx context.Context, opts RetrieveAuthorOptions) (*models.Author, error) {
	author := &models.Author{}

	q := svc.db.
		NewSelect().
		Model(author)

	if opts.ID != nil {
		q = q.Where("a.id = ?", *opts.ID)
	}
	if opts.IncludeBooks {
		q = q.Relation("Books")
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Author")
		}
		return nil, errors.WithStack(err)
	}

	return author, nil
}

func (svc *Service) ListAuthors(ctx context.Context) ([]*models.Author, error) {
	var authors []*models.Author

	err := svc.db.
		NewSelect().
		Model(&authors).
		Order("a.family_name ASC", "a.first_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return authors, nil
}

// UpdateAuthor writes the given columns in place by primary key; the author
// keeps its original id. Returns NotFound when the id no longer resolves.
func (svc *Service) UpdateAuthor(ctx context.Context, author *models.Author, opts UpdateAuthorOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	author.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	res, err := svc.db.
		NewUpdate().
		Model(author).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Author")
	}
	return nil
}

// DeleteAuthor removes the author. Callers check for remaining books first;
// deleting an absent id is a no-op.
func (svc *Service) DeleteAuthor(ctx context.Context, authorID int) error {
	_, err := svc.db.
		NewDelete().
		Model((*models.Author)(nil)).
		Where("id = ?", authorID).
		Exec(ctx)
	return errors.WithStack(err)
}

// Count returns the total number of authors.
func (svc *Service) Count(ctx context.Context) (int, error) {
	count, err := svc.db.NewSelect().
		Model((*models.Author)(nil)).
		Count(ctx)
	return count, errors.WithStack(err)
}
