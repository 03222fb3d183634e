package genres

import (
	"strconv"

	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/DozzyMontalo/locallibrary/pkg/views"
)

func listPage(genres []*models.Genre) string {
	content := views.H1("Genre List")
	if len(genres) == 0 {
		content += views.Text("There are no genres in this library.")
	}
	for _, genre := range genres {
		content += views.Item(genre.Name, genre.URL(), "")
	}
	return views.Page("Genre List", content)
}

func detailPage(genre *models.Genre, books []*models.Book) string {
	title := "Genre: " + genre.Name
	content := views.H1(title)
	content += "<h2>Books</h2>"
	if len(books) == 0 {
		content += views.Text("There are no books in this genre.")
	}
	for _, book := range books {
		content += views.Item(book.Title, book.URL(), book.Summary)
	}
	content += views.Link("Update", genre.URL()+"/update") + " | " + views.Link("Delete", genre.URL()+"/delete")
	return views.Page(title, content)
}

func formPage(title string, form GenreForm, errs []string) string {
	content := views.H1(title)
	content += views.ErrorList(errs)
	content += views.Form("", "Submit",
		views.TextField("Genre:", "name", form.Name, "Fantasy, Poetry, etc."),
	)
	return views.Page(title, content)
}

func deletePage(genre *models.Genre, books []*models.Book) string {
	title := "Delete Genre: " + genre.Name
	content := views.H1(title)
	if len(books) > 0 {
		content += views.Text("Delete the following books before deleting this genre:")
		for _, book := range books {
			content += views.Item(book.Title, book.URL(), book.Summary)
		}
	} else {
		content += views.Text("Do you really want to delete this genre?")
		content += views.Form("", "Delete",
			views.HiddenField("genreid", strconv.Itoa(genre.ID)),
		)
	}
	return views.Page(title, content)
}
