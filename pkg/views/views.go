// Package views holds the base page layout and the shared HTML building
// blocks used by the entity packages. Rendering is a pure function from data
// to an HTML string; every interpolated value is escaped here so handlers and
// services never have to sanitize stored text themselves.
package views

import (
	"fmt"
	"html"
	"strings"
)

const basePage = `<!DOCTYPE html>
<html>
<head>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>%s</title>
  <style>
    body { font-family: sans-serif; margin: 0; display: flex; }
    .sidebar { min-width: 180px; padding: 16px; border-right: 1px solid #ccc; }
    .sidebar a { display: block; padding: 4px 0; color: #007bff; text-decoration: none; }
    .content { padding: 16px 24px; flex: 1; }
    .item { padding: 8px 0; border-bottom: 1px solid #eee; }
    .item-title { font-weight: bold; }
    .item-meta { font-size: 0.9em; color: #666; }
    .errors { color: #b00; margin: 12px 0; }
    .field { margin: 12px 0; }
    .field label { display: block; font-weight: bold; margin-bottom: 4px; }
    .field input[type=text], .field input[type=date], .field select, .field textarea {
      width: 100%%; max-width: 480px; padding: 6px; box-sizing: border-box;
    }
    button { padding: 8px 16px; }
    dl dt { font-weight: bold; margin-top: 8px; }
  </style>
</head>
<body>
  <div class="sidebar">%s</div>
  <div class="content">%s</div>
</body>
</html>`

var sidebarLinks = []struct {
	label string
	url   string
}{
	{"Home", "/catalog"},
	{"All books", "/catalog/books"},
	{"All authors", "/catalog/authors"},
	{"All genres", "/catalog/genres"},
	{"All book-instances", "/catalog/bookinstances"},
	{"Create new author", "/catalog/author/create"},
	{"Create new genre", "/catalog/genre/create"},
	{"Create new book", "/catalog/book/create"},
	{"Create new book instance (copy)", "/catalog/bookinstance/create"},
}

// Page wraps content in the base layout with the sidebar navigation.
func Page(title, content string) string {
	var sidebar strings.Builder
	for _, link := range sidebarLinks {
		fmt.Fprintf(&sidebar, `<a href="%s">%s</a>`, html.EscapeString(link.url), html.EscapeString(link.label))
	}
	return fmt.Sprintf(basePage, html.EscapeString(title), sidebar.String(), content)
}

// H1 renders the page heading.
func H1(text string) string {
	return "<h1>" + html.EscapeString(text) + "</h1>"
}

// Link renders an inline anchor.
func Link(text, url string) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(url), html.EscapeString(text))
}

// Item renders one row of a list page. The whole row links to the entity's
// detail page; meta is the smaller second line.
func Item(title, url, meta string) string {
	metaHTML := ""
	if meta != "" {
		metaHTML = fmt.Sprintf(`<div class="item-meta">%s</div>`, html.EscapeString(meta))
	}
	return fmt.Sprintf(`<div class="item"><div class="item-title"><a href="%s">%s</a></div>%s</div>`,
		html.EscapeString(url), html.EscapeString(title), metaHTML)
}

// Text renders an escaped paragraph.
func Text(text string) string {
	return "<p>" + html.EscapeString(text) + "</p>"
}

// Definition renders a dt/dd pair for detail pages.
func Definition(term, value string) string {
	return fmt.Sprintf("<dt>%s</dt><dd>%s</dd>", html.EscapeString(term), html.EscapeString(value))
}

// DefinitionLink is Definition with the value rendered as a link.
func DefinitionLink(term, value, url string) string {
	return fmt.Sprintf("<dt>%s</dt><dd>%s</dd>", html.EscapeString(term), Link(value, url))
}

// ErrorList renders the collected validation messages above a re-displayed
// form. Empty input renders nothing.
func ErrorList(msgs []string) string {
	if len(msgs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<ul class="errors">`)
	for _, msg := range msgs {
		b.WriteString("<li>" + html.EscapeString(msg) + "</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

// Form wraps fields in a POST form ending with a submit button. action may be
// empty to post back to the current URL.
func Form(action, submitLabel string, fields ...string) string {
	return fmt.Sprintf(`<form method="POST" action="%s">%s<button type="submit">%s</button></form>`,
		html.EscapeString(action), strings.Join(fields, ""), html.EscapeString(submitLabel))
}

// TextField renders a labeled single-line text input.
func TextField(label, name, value, placeholder string) string {
	return fmt.Sprintf(`<div class="field"><label for="%[2]s">%[1]s</label>`+
		`<input type="text" id="%[2]s" name="%[2]s" value="%[3]s" placeholder="%[4]s"></div>`,
		html.EscapeString(label), html.EscapeString(name), html.EscapeString(value), html.EscapeString(placeholder))
}

// DateField renders a labeled date input with a YYYY-MM-DD value.
func DateField(label, name, value string) string {
	return fmt.Sprintf(`<div class="field"><label for="%[2]s">%[1]s</label>`+
		`<input type="date" id="%[2]s" name="%[2]s" value="%[3]s"></div>`,
		html.EscapeString(label), html.EscapeString(name), html.EscapeString(value))
}

// TextArea renders a labeled multi-line input.
func TextArea(label, name, value string) string {
	return fmt.Sprintf(`<div class="field"><label for="%[2]s">%[1]s</label>`+
		`<textarea id="%[2]s" name="%[2]s" rows="6">%[3]s</textarea></div>`,
		html.EscapeString(label), html.EscapeString(name), html.EscapeString(value))
}

// SelectOption is one entry in a select control.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// SelectField renders a labeled select control.
func SelectField(label, name string, options []SelectOption) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="field"><label for="%[2]s">%[1]s</label><select id="%[2]s" name="%[2]s">`,
		html.EscapeString(label), html.EscapeString(name))
	for _, opt := range options {
		selected := ""
		if opt.Selected {
			selected = " selected"
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`,
			html.EscapeString(opt.Value), selected, html.EscapeString(opt.Label))
	}
	b.WriteString("</select></div>")
	return b.String()
}

// CheckboxField renders one labeled checkbox in a multi-select group.
func CheckboxField(label, name, value string, checked bool) string {
	checkedAttr := ""
	if checked {
		checkedAttr = " checked"
	}
	return fmt.Sprintf(`<label style="margin-right: 12px;">`+
		`<input type="checkbox" name="%s" value="%s"%s> %s</label>`,
		html.EscapeString(name), html.EscapeString(value), checkedAttr, html.EscapeString(label))
}

// HiddenField renders a hidden input, used to carry the target id in delete
// form bodies.
func HiddenField(name, value string) string {
	return fmt.Sprintf(`<input type="hidden" name="%s" value="%s">`,
		html.EscapeString(name), html.EscapeString(value))
}

// ErrorPage renders the generic error page. detail is only shown in
// development contexts; callers pass the empty string otherwise.
func ErrorPage(status int, message, detail string) string {
	content := fmt.Sprintf("<h1>%s</h1><p>Status: %d</p>", html.EscapeString(message), status)
	if detail != "" {
		content += "<pre>" + html.EscapeString(detail) + "</pre>"
	}
	return Page("Error", content)
}
