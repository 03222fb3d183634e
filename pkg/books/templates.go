package books

import (
	"strconv"
	"strings"

	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/DozzyMontalo/locallibrary/pkg/views"
)

func listPage(books []*models.Book) string {
	content := views.H1("Book List")
	if len(books) == 0 {
		content += views.Text("There are no books in this library.")
	}
	for _, book := range books {
		meta := ""
		if book.Author != nil {
			meta = book.Author.Name()
		}
		content += views.Item(book.Title, book.URL(), meta)
	}
	return views.Page("Book List", content)
}

func detailPage(book *models.Book) string {
	title := "Book: " + book.Title
	content := views.H1(title)
	content += "<dl>"
	if book.Author != nil {
		content += views.DefinitionLink("Author", book.Author.Name(), book.Author.URL())
	}
	content += views.Definition("Summary", book.Summary)
	content += views.Definition("ISBN", book.ISBN)
	genreNames := make([]string, 0, len(book.Genres))
	for _, bg := range book.Genres {
		if bg.Genre != nil {
			genreNames = append(genreNames, bg.Genre.Name)
		}
	}
	content += views.Definition("Genre", strings.Join(genreNames, ", "))
	content += "</dl>"

	content += "<h2>Copies</h2>"
	if len(book.Instances) == 0 {
		content += views.Text("There are no copies of this book in the library.")
	}
	for _, instance := range book.Instances {
		meta := instance.Imprint
		if instance.Status != models.StatusAvailable {
			meta += " (due back " + instance.DueBackFormatted() + ")"
		}
		content += views.Item(instance.Status, instance.URL(), meta)
	}

	content += views.Link("Update", book.URL()+"/update") + " | " + views.Link("Delete", book.URL()+"/delete")
	return views.Page(title, content)
}

func formPage(title string, form BookForm, authors []*models.Author, genres []*models.Genre, errs []string) string {
	authorOptions := make([]views.SelectOption, 0, len(authors)+1)
	authorOptions = append(authorOptions, views.SelectOption{Value: "", Label: "-- Select author --"})
	for _, author := range authors {
		value := strconv.Itoa(author.ID)
		authorOptions = append(authorOptions, views.SelectOption{
			Value:    value,
			Label:    author.Name(),
			Selected: value == form.Author,
		})
	}

	checked := make(map[string]bool, len(form.Genre))
	for _, id := range form.Genre {
		checked[id] = true
	}
	var genreBoxes strings.Builder
	genreBoxes.WriteString(`<div class="field"><label>Genre:</label>`)
	for _, genre := range genres {
		value := strconv.Itoa(genre.ID)
		genreBoxes.WriteString(views.CheckboxField(genre.Name, "genre", value, checked[value]))
	}
	genreBoxes.WriteString("</div>")

	content := views.H1(title)
	content += views.ErrorList(errs)
	content += views.Form("", "Submit",
		views.TextField("Title:", "title", form.Title, "Name of book"),
		views.SelectField("Author:", "author", authorOptions),
		views.TextArea("Summary:", "summary", form.Summary),
		views.TextField("ISBN:", "isbn", form.ISBN, "ISBN13"),
		genreBoxes.String(),
	)
	return views.Page(title, content)
}

func deletePage(book *models.Book) string {
	title := "Delete Book: " + book.Title
	content := views.H1(title)
	if len(book.Instances) > 0 {
		content += views.Text("Delete the following copies before deleting this book:")
		for _, instance := range book.Instances {
			content += views.Item(instance.Status, instance.URL(), instance.Imprint)
		}
	} else {
		content += views.Text("Do you really want to delete this book?")
		content += views.Form("", "Delete",
			views.HiddenField("bookid", strconv.Itoa(book.ID)),
		)
	}
	return views.Page(title, content)
}
