package bookinstances

import (
	"net/http"
	"strconv"

	"github.com/DozzyMontalo/locallibrary/pkg/books"
	"github.com/DozzyMontalo/locallibrary/pkg/errcodes"
	"github.com/DozzyMontalo/locallibrary/pkg/forms"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const listURL = "/catalog/bookinstances"

type handler struct {
	instanceService *Service
	bookService     *books.Service
	decoder         *forms.Decoder
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	instances, err := h.instanceService.ListInstances(ctx, ListInstancesOptions{})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, listPage(instances)))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book copy")
	}

	instance, err := h.instanceService.RetrieveInstance(ctx, RetrieveInstanceOptions{
		ID:          &id,
		IncludeBook: true,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, detailPage(instance)))
}

func (h *handler) createForm(c echo.Context) error {
	ctx := c.Request().Context()

	bookList, err := h.bookService.ListTitles(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, formPage("Create BookInstance", InstanceForm{}, bookList, nil)))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	form := InstanceForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	msgs := h.decoder.Validate(&form)

	if len(msgs) > 0 {
		// Re-render the form with every message and the submitted values. The
		// book list has to be fetched again for the select control.
		bookList, err := h.bookService.ListTitles(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(c.HTML(http.StatusOK, formPage("Create BookInstance", form, bookList, msgs)))
	}

	bookID, err := strconv.Atoi(form.Book)
	if err != nil {
		return errcodes.ValidationError("Book must be specified.")
	}

	// Identity is left unassigned; the database assigns it on insert.
	instance := &models.BookInstance{
		BookID:  bookID,
		Imprint: form.Imprint,
		Status:  form.Status,
	}
	if due := forms.ParseDate(form.DueBack); due != nil {
		instance.DueBack = *due
	}

	if err := h.instanceService.CreateInstance(ctx, instance); err != nil {
		return errors.WithStack(err)
	}

	// Redirect rather than render so a refresh can't double-submit.
	return errors.WithStack(c.Redirect(http.StatusSeeOther, instance.URL()))
}

func (h *handler) updateForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book copy")
	}

	// The target record and the book list are independent reads, so they are
	// issued concurrently.
	var instance *models.BookInstance
	var bookList []*models.Book

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		instance, err = h.instanceService.RetrieveInstance(ctx, RetrieveInstanceOptions{
			ID:          &id,
			IncludeBook: true,
		})
		return err
	})
	g.Go(func() error {
		var err error
		bookList, err = h.bookService.ListTitles(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return errors.WithStack(err)
	}

	form := InstanceForm{
		Book:    strconv.Itoa(instance.BookID),
		Imprint: instance.Imprint,
		Status:  instance.Status,
		DueBack: instance.DueBackYMD(),
	}

	return errors.WithStack(c.HTML(http.StatusOK, formPage("Update BookInstance", form, bookList, nil)))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book copy")
	}

	form := InstanceForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	msgs := h.decoder.Validate(&form)

	if len(msgs) > 0 {
		bookList, err := h.bookService.ListTitles(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(c.HTML(http.StatusOK, formPage("Update BookInstance", form, bookList, msgs)))
	}

	bookID, err := strconv.Atoi(form.Book)
	if err != nil {
		return errcodes.ValidationError("Book must be specified.")
	}

	// The candidate carries the original id from the route. Without it the
	// database would assign a new identity and orphan the original record.
	instance := &models.BookInstance{
		ID:      id,
		BookID:  bookID,
		Imprint: form.Imprint,
		Status:  form.Status,
	}
	columns := []string{"book_id", "imprint", "status"}
	if due := forms.ParseDate(form.DueBack); due != nil {
		instance.DueBack = *due
		columns = append(columns, "due_back")
	}

	err = h.instanceService.UpdateInstance(ctx, instance, UpdateInstanceOptions{Columns: columns})
	if err != nil {
		return errors.WithStack(err)
	}

	// The redirect target comes from the updated record.
	return errors.WithStack(c.Redirect(http.StatusSeeOther, instance.URL()))
}

func (h *handler) deleteForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
	}

	instance, err := h.instanceService.RetrieveInstance(ctx, RetrieveInstanceOptions{
		ID:          &id,
		IncludeBook: true,
	})
	if err != nil {
		// Deleting a copy that's already gone is treated as satisfied, not an
		// error: go straight back to the list.
		if errors.Is(err, errcodes.NotFound("Book copy")) {
			return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
		}
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, deletePage(instance)))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	form := deleteInstanceForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	id, err := strconv.Atoi(form.InstanceID)
	if err != nil {
		return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
	}

	// Confirm the target still exists; an absent record just means the delete
	// is already done.
	_, err = h.instanceService.RetrieveInstance(ctx, RetrieveInstanceOptions{ID: &id})
	if err != nil && !errors.Is(err, errcodes.NotFound("Book copy")) {
		return errors.WithStack(err)
	}

	if err := h.instanceService.DeleteInstance(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
}
