package genres

import (
	"context"
	"database/sql"
	"time"

	"github.com/DozzyMontalo/locallibrary/pkg/errcodes"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveGenreOptions struct {
	ID   *int
	Name *string
}

type UpdateGenreOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateGenre(ctx context.Context, genre *models.Genre) error {
	now := time.Now()
	if genre.CreatedAt.IsZero() {
		genre.CreatedAt = now
	}
	genre.UpdatedAt = genre.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(genre).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveGenre(ctx context.Context, opts RetrieveGenreOptions) (*models.Genre, error) {
	genre := &models.Genre{}

	q := svc.db.
		NewSelect().
		Model(genre)

	if opts.ID != nil {
		q = q.Where("g.id = ?", *opts.ID)
	}
	if opts.Name != nil {
		// Case-insensitive match
		q = q.Where("LOWER(g.name) = LOWER(?)", *opts.Name)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Genre")
		}
		return nil, errors.WithStack(err)
	}

	return genre, nil
}

// FindOrCreateGenre returns an existing genre of the same name
// (case-insensitive) rather than inserting a duplicate.
func (svc *Service) FindOrCreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	genre, err := svc.RetrieveGenre(ctx, RetrieveGenreOptions{Name: &name})
	if err == nil {
		return genre, nil
	}
	if !errors.Is(err, errcodes.NotFound("Genre")) {
		return nil, err
	}

	genre = &models.Genre{Name: name}
	if err := svc.CreateGenre(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (svc *Service) ListGenres(ctx context.Context) ([]*models.Genre, error) {
	var genres []*models.Genre

	err := svc.db.
		NewSelect().
		Model(&genres).
		Order("g.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return genres, nil
}

// UpdateGenre writes the given columns in place by primary key; the genre
// keeps its original id. Returns NotFound when the id no longer resolves.
func (svc *Service) UpdateGenre(ctx context.Context, genre *models.Genre, opts UpdateGenreOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	genre.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	res, err := svc.db.
		NewUpdate().
		Model(genre).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Genre")
	}
	return nil
}

// DeleteGenre removes the genre and its book associations. Callers check for
// associated books first.
func (svc *Service) DeleteGenre(ctx context.Context, genreID int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.BookGenre)(nil)).
			Where("genre_id = ?", genreID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = tx.NewDelete().
			Model((*models.Genre)(nil)).
			Where("id = ?", genreID).
			Exec(ctx)
		return errors.WithStack(err)
	})
}

// ListBooks returns the books associated with the genre, ordered by title.
func (svc *Service) ListBooks(ctx context.Context, genreID int) ([]*models.Book, error) {
	var books []*models.Book

	err := svc.db.
		NewSelect().
		Model(&books).
		Join("INNER JOIN book_genres bg ON bg.book_id = b.id").
		Where("bg.genre_id = ?", genreID).
		Order("b.title ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

// Count returns the total number of genres.
func (svc *Service) Count(ctx context.Context) (int, error) {
	count, err := svc.db.NewSelect().
		Model((*models.Genre)(nil)).
		Count(ctx)
	return count, errors.WithStack(err)
}
