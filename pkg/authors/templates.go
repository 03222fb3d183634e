package authors

import (
	"strconv"

	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/DozzyMontalo/locallibrary/pkg/views"
)

func listPage(authors []*models.Author) string {
	content := views.H1("Author List")
	if len(authors) == 0 {
		content += views.Text("There are no authors in this library.")
	}
	for _, author := range authors {
		content += views.Item(author.Name(), author.URL(), author.Lifespan())
	}
	return views.Page("Author List", content)
}

func detailPage(author *models.Author) string {
	title := "Author: " + author.Name()
	content := views.H1(title)
	content += "<dl>"
	content += views.Definition("Lifespan", author.Lifespan())
	content += "</dl>"
	content += "<h2>Books</h2>"
	if len(author.Books) == 0 {
		content += views.Text("This author has no books.")
	}
	for _, book := range author.Books {
		content += views.Item(book.Title, book.URL(), book.Summary)
	}
	content += views.Link("Update", author.URL()+"/update") + " | " + views.Link("Delete", author.URL()+"/delete")
	return views.Page(title, content)
}

func formPage(title string, form AuthorForm, errs []string) string {
	content := views.H1(title)
	content += views.ErrorList(errs)
	content += views.Form("", "Submit",
		views.TextField("First name:", "first_name", form.FirstName, "First name"),
		views.TextField("Family name:", "family_name", form.FamilyName, "Family name"),
		views.DateField("Date of birth:", "date_of_birth", form.DateOfBirth),
		views.DateField("Date of death:", "date_of_death", form.DateOfDeath),
	)
	return views.Page(title, content)
}

// deletePage lists the author's books when there are any; the delete button
// is only offered once the author has none left.
func deletePage(author *models.Author) string {
	title := "Delete Author: " + author.Name()
	content := views.H1(title)
	if len(author.Books) > 0 {
		content += views.Text("Delete the following books before deleting this author:")
		for _, book := range author.Books {
			content += views.Item(book.Title, book.URL(), book.Summary)
		}
	} else {
		content += views.Text("Do you really want to delete this author?")
		content += views.Form("", "Delete",
			views.HiddenField("authorid", strconv.Itoa(author.ID)),
		)
	}
	return views.Page(title, content)
}
