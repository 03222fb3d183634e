package books

import (
	"context"
	"database/sql"
	"time"

	"github.com/DozzyMontalo/locallibrary/pkg/errcodes"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveBookOptions struct {
	ID               *int
	IncludeAuthor    bool
	IncludeGenres    bool
	IncludeInstances bool
}

type ListBooksOptions struct {
	AuthorID *int
	GenreID  *int
}

type UpdateBookOptions struct {
	Columns []string
	// GenreIDs replaces the book's genre associations when non-nil.
	GenreIDs []int
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateBook persists a new book and its genre associations in one
// transaction. The database assigns the id.
func (svc *Service) CreateBook(ctx context.Context, book *models.Book, genreIDs []int) error {
	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = book.CreatedAt

	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.
			NewInsert().
			Model(book).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return svc.insertGenres(ctx, tx, book.ID, genreIDs)
	})
}

func (svc *Service) insertGenres(ctx context.Context, tx bun.Tx, bookID int, genreIDs []int) error {
	if len(genreIDs) == 0 {
		return nil
	}
	bookGenres := make([]*models.BookGenre, 0, len(genreIDs))
	for _, genreID := range genreIDs {
		bookGenres = append(bookGenres, &models.BookGenre{BookID: bookID, GenreID: genreID})
	}
	_, err := tx.NewInsert().Model(&bookGenres).Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveBook(ctx context.Context, opts RetrieveBookOptions) (*models.Book, error) {
	book := &models.Book{}

	q := svc.db.
		NewSelect().
		Model(book)

	if opts.ID != nil {
		q = q.Where("b.id = ?", *opts.ID)
	}
	if opts.IncludeAuthor {
		q = q.Relation("Author")
	}
	if opts.IncludeGenres {
		q = q.Relation("Genres").Relation("Genres.Genre")
	}
	if opts.IncludeInstances {
		q = q.Relation("Instances")
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// ListBooks returns all books joined with their authors, ordered by title.
func (svc *Service) ListBooks(ctx context.Context, opts ListBooksOptions) ([]*models.Book, error) {
	var books []*models.Book

	q := svc.db.
		NewSelect().
		Model(&books).
		Relation("Author").
		Order("b.title ASC")

	if opts.AuthorID != nil {
		q = q.Where("b.author_id = ?", *opts.AuthorID)
	}
	if opts.GenreID != nil {
		q = q.Join("INNER JOIN book_genres bg ON bg.book_id = b.id").
			Where("bg.genre_id = ?", *opts.GenreID)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

// ListTitles returns id and title only, for populating book select controls.
func (svc *Service) ListTitles(ctx context.Context) ([]*models.Book, error) {
	var books []*models.Book

	err := svc.db.
		NewSelect().
		Model(&books).
		Column("b.id", "b.title").
		Order("b.title ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

// UpdateBook writes the given columns in place by primary key, carrying the
// original id, and replaces the genre associations when GenreIDs is set.
func (svc *Service) UpdateBook(ctx context.Context, book *models.Book, opts UpdateBookOptions) error {
	if len(opts.Columns) == 0 && opts.GenreIDs == nil {
		return nil
	}

	book.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.
			NewUpdate().
			Model(book).
			Column(columns...).
			WherePK().
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errcodes.NotFound("Book")
		}

		if opts.GenreIDs == nil {
			return nil
		}

		_, err = tx.NewDelete().
			Model((*models.BookGenre)(nil)).
			Where("book_id = ?", book.ID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return svc.insertGenres(ctx, tx, book.ID, opts.GenreIDs)
	})
}

// DeleteBook removes the book and its genre associations. The caller is
// responsible for checking that no copies reference the book first.
func (svc *Service) DeleteBook(ctx context.Context, bookID int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.BookGenre)(nil)).
			Where("book_id = ?", bookID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = tx.NewDelete().
			Model((*models.Book)(nil)).
			Where("id = ?", bookID).
			Exec(ctx)
		return errors.WithStack(err)
	})
}

// Count returns the total number of books.
func (svc *Service) Count(ctx context.Context) (int, error) {
	count, err := svc.db.NewSelect().
		Model((*models.Book)(nil)).
		Count(ctx)
	return count, errors.WithStack(err)
}
