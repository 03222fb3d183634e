package bookinstances

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DozzyMontalo/locallibrary/pkg/errcodes"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveInstanceOptions struct {
	ID          *int
	IncludeBook bool
}

type ListInstancesOptions struct {
	BookID *int
}

type UpdateInstanceOptions struct {
	Columns []string
}

type CountInstancesOptions struct {
	Status *string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateInstance persists a new copy. Identity is assigned by the database;
// the schema defaults apply here: status falls back to Maintenance and
// due_back to the creation time. A status outside the enumeration is rejected
// before anything is written.
func (svc *Service) CreateInstance(ctx context.Context, instance *models.BookInstance) error {
	now := time.Now()
	if instance.CreatedAt.IsZero() {
		instance.CreatedAt = now
	}
	instance.UpdatedAt = instance.CreatedAt

	if instance.Status == "" {
		instance.Status = models.StatusMaintenance
	}
	if !models.IsValidInstanceStatus(instance.Status) {
		return errcodes.ValidationError(fmt.Sprintf("%q is not a valid status.", instance.Status))
	}
	if instance.DueBack.IsZero() {
		instance.DueBack = now
	}

	_, err := svc.db.
		NewInsert().
		Model(instance).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveInstance(ctx context.Context, opts RetrieveInstanceOptions) (*models.BookInstance, error) {
	instance := &models.BookInstance{}

	q := svc.db.
		NewSelect().
		Model(instance)

	if opts.ID != nil {
		q = q.Where("bi.id = ?", *opts.ID)
	}
	if opts.IncludeBook {
		q = q.Relation("Book")
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book copy")
		}
		return nil, errors.WithStack(err)
	}

	return instance, nil
}

// ListInstances returns all copies joined with their books.
func (svc *Service) ListInstances(ctx context.Context, opts ListInstancesOptions) ([]*models.BookInstance, error) {
	var instances []*models.BookInstance

	q := svc.db.
		NewSelect().
		Model(&instances).
		Relation("Book").
		Order("bi.id ASC")

	if opts.BookID != nil {
		q = q.Where("bi.book_id = ?", *opts.BookID)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return instances, nil
}

// UpdateInstance writes the given columns in place by primary key. The
// instance must carry the original id; a fresh id would orphan the record and
// break every inbound reference, so the id is never regenerated here. Returns
// NotFound when the id no longer resolves.
func (svc *Service) UpdateInstance(ctx context.Context, instance *models.BookInstance, opts UpdateInstanceOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	for _, col := range opts.Columns {
		if col == "status" && !models.IsValidInstanceStatus(instance.Status) {
			return errcodes.ValidationError(fmt.Sprintf("%q is not a valid status.", instance.Status))
		}
	}

	instance.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	res, err := svc.db.
		NewUpdate().
		Model(instance).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Book copy")
	}
	return nil
}

// DeleteInstance removes the copy. Deleting an id that no longer exists is a
// no-op, which makes delete idempotent.
func (svc *Service) DeleteInstance(ctx context.Context, instanceID int) error {
	_, err := svc.db.
		NewDelete().
		Model((*models.BookInstance)(nil)).
		Where("id = ?", instanceID).
		Exec(ctx)
	return errors.WithStack(err)
}

// Count returns the number of copies, optionally limited to one status.
func (svc *Service) Count(ctx context.Context, opts CountInstancesOptions) (int, error) {
	q := svc.db.NewSelect().
		Model((*models.BookInstance)(nil))

	if opts.Status != nil {
		q = q.Where("bi.status = ?", *opts.Status)
	}

	count, err := q.Count(ctx)
	return count, errors.WithStack(err)
}
