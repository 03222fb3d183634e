package authors

import (
	"net/http"
	"strconv"

	"github.com/DozzyMontalo/locallibrary/pkg/errcodes"
	"github.com/DozzyMontalo/locallibrary/pkg/forms"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const listURL = "/catalog/authors"

type handler struct {
	authorService *Service
	decoder       *forms.Decoder
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	authors, err := h.authorService.ListAuthors(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, listPage(authors)))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	author, err := h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{
		ID:           &id,
		IncludeBooks: true,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, detailPage(author)))
}

func (h *handler) createForm(c echo.Context) error {
	return errors.WithStack(c.HTML(http.StatusOK, formPage("Create Author", AuthorForm{}, nil)))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	form := AuthorForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	if msgs := h.decoder.Validate(&form); len(msgs) > 0 {
		return errors.WithStack(c.HTML(http.StatusOK, formPage("Create Author", form, msgs)))
	}

	author := &models.Author{
		FirstName:   form.FirstName,
		FamilyName:  form.FamilyName,
		DateOfBirth: forms.ParseDate(form.DateOfBirth),
		DateOfDeath: forms.ParseDate(form.DateOfDeath),
	}

	if err := h.authorService.CreateAuthor(ctx, author); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.Redirect(http.StatusSeeOther, author.URL()))
}

func (h *handler) updateForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	author, err := h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	form := AuthorForm{
		FirstName:   author.FirstName,
		FamilyName:  author.FamilyName,
		DateOfBirth: author.DateOfBirthYMD(),
		DateOfDeath: author.DateOfDeathYMD(),
	}

	return errors.WithStack(c.HTML(http.StatusOK, formPage("Update Author", form, nil)))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	form := AuthorForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	if msgs := h.decoder.Validate(&form); len(msgs) > 0 {
		return errors.WithStack(c.HTML(http.StatusOK, formPage("Update Author", form, msgs)))
	}

	// Carry the original id so the database updates in place instead of
	// assigning a new identity.
	author := &models.Author{
		ID:          id,
		FirstName:   form.FirstName,
		FamilyName:  form.FamilyName,
		DateOfBirth: forms.ParseDate(form.DateOfBirth),
		DateOfDeath: forms.ParseDate(form.DateOfDeath),
	}

	err = h.authorService.UpdateAuthor(ctx, author, UpdateAuthorOptions{
		Columns: []string{"first_name", "family_name", "date_of_birth", "date_of_death"},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.Redirect(http.StatusSeeOther, author.URL()))
}

func (h *handler) deleteForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
	}

	author, err := h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{
		ID:           &id,
		IncludeBooks: true,
	})
	if err != nil {
		if errors.Is(err, errcodes.NotFound("Author")) {
			return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
		}
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, deletePage(author)))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	form := deleteAuthorForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	id, err := strconv.Atoi(form.AuthorID)
	if err != nil {
		return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
	}

	author, err := h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{
		ID:           &id,
		IncludeBooks: true,
	})
	if err != nil {
		if errors.Is(err, errcodes.NotFound("Author")) {
			return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
		}
		return errors.WithStack(err)
	}

	// An author with books can't be deleted yet; show the books instead.
	if len(author.Books) > 0 {
		return errors.WithStack(c.HTML(http.StatusOK, deletePage(author)))
	}

	if err := h.authorService.DeleteAuthor(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
}
