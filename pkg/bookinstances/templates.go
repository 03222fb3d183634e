package bookinstances

import (
	"strconv"

	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/DozzyMontalo/locallibrary/pkg/views"
)

func listPage(instances []*models.BookInstance) string {
	content := views.H1("Book Instance List")
	if len(instances) == 0 {
		content += views.Text("There are no book copies in this library.")
	}
	for _, instance := range instances {
		title := ""
		if instance.Book != nil {
			title = instance.Book.Title
		}
		meta := instance.Imprint + " - " + instance.Status
		if instance.Status != models.StatusAvailable {
			meta += " (due back " + instance.DueBackFormatted() + ")"
		}
		content += views.Item(title, instance.URL(), meta)
	}
	return views.Page("Book Instance List", content)
}

func detailPage(instance *models.BookInstance) string {
	title := "Copy: " + instance.Book.Title
	content := views.H1(title)
	content += "<dl>"
	content += views.DefinitionLink("Book", instance.Book.Title, instance.Book.URL())
	content += views.Definition("Imprint", instance.Imprint)
	content += views.Definition("Status", instance.Status)
	content += views.Definition("Due back", instance.DueBackFormatted())
	content += "</dl>"
	content += views.Link("Update", instance.URL()+"/update") + " | " + views.Link("Delete", instance.URL()+"/delete")
	return views.Page(title, content)
}

func formPage(title string, form InstanceForm, books []*models.Book, errs []string) string {
	bookOptions := make([]views.SelectOption, 0, len(books)+1)
	bookOptions = append(bookOptions, views.SelectOption{Value: "", Label: "-- Select book --"})
	for _, book := range books {
		value := strconv.Itoa(book.ID)
		bookOptions = append(bookOptions, views.SelectOption{
			Value:    value,
			Label:    book.Title,
			Selected: value == form.Book,
		})
	}

	statusOptions := make([]views.SelectOption, 0, len(models.InstanceStatuses))
	for _, status := range models.InstanceStatuses {
		statusOptions = append(statusOptions, views.SelectOption{
			Value:    status,
			Label:    status,
			Selected: status == form.Status,
		})
	}

	content := views.H1(title)
	content += views.ErrorList(errs)
	content += views.Form("", "Submit",
		views.SelectField("Book:", "book", bookOptions),
		views.TextField("Imprint:", "imprint", form.Imprint, "Publisher and date information"),
		views.DateField("Date when book available:", "due_back", form.DueBack),
		views.SelectField("Status:", "status", statusOptions),
	)
	return views.Page(title, content)
}

func deletePage(instance *models.BookInstance) string {
	title := "Delete BookInstance"
	if instance.Book != nil {
		title = "Delete " + instance.Book.Title
	}
	content := views.H1(title)
	content += "<dl>"
	if instance.Book != nil {
		content += views.DefinitionLink("Book", instance.Book.Title, instance.Book.URL())
	}
	content += views.Definition("Imprint", instance.Imprint)
	content += views.Definition("Status", instance.Status)
	content += "</dl>"
	content += views.Text("Do you really want to delete this copy?")
	content += views.Form("", "Delete",
		views.HiddenField("instanceid", strconv.Itoa(instance.ID)),
	)
	return views.Page(title, content)
}
