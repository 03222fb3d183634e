package catalog

import (
	"strconv"

	"github.com/DozzyMontalo/locallibrary/pkg/views"
)

func indexPage(n counts) string {
	content := views.H1("Local Library Home")
	content += views.Text("Welcome to LocalLibrary, a very basic library catalog.")
	content += "<h2>Dynamic content</h2>"
	content += "<dl>"
	content += views.DefinitionLink("Books", strconv.Itoa(n.Books), "/catalog/books")
	content += views.DefinitionLink("Copies", strconv.Itoa(n.Instances), "/catalog/bookinstances")
	content += views.Definition("Copies available", strconv.Itoa(n.AvailableInstances))
	content += views.DefinitionLink("Authors", strconv.Itoa(n.Authors), "/catalog/authors")
	content += views.DefinitionLink("Genres", strconv.Itoa(n.Genres), "/catalog/genres")
	content += "</dl>"
	return views.Page("Local Library Home", content)
}
