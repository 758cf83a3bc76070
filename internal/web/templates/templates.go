// Package templates defines the HTML components for the list pages.
package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// ItemRow holds formatted item data for display.
type ItemRow struct {
	// ID is the unique identifier for the item.
	ID string
	// Name is the display label of the item.
	Name string
}

// Layout renders the shared page shell around its children.
func Layout(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		if _, err := io.WriteString(w,
			"<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">"+
				"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">"+
				"<title>"+templ.EscapeString(title)+"</title>"+
				"<link rel=\"stylesheet\" href=\"/static/app.css\">"+
				"</head><body>"); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// ListPage renders one list: its items as delete forms, the add-item form,
// and the new-list form.
func ListPage(title string, items []ItemRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		safeTitle := templ.EscapeString(title)
		if _, err := io.WriteString(w,
			"<div class=\"box\" id=\"heading\"><h1>"+safeTitle+"</h1></div>"+
				"<div class=\"box\">"); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := io.WriteString(w,
				"<form action=\"/delete\" method=\"post\" class=\"item\">"+
					"<input type=\"checkbox\" name=\"checkbox\" value=\""+templ.EscapeString(item.ID)+"\" onchange=\"this.form.submit()\">"+
					"<p>"+templ.EscapeString(item.Name)+"</p>"+
					"<input type=\"hidden\" name=\"checkedListName\" value=\""+safeTitle+"\">"+
					"</form>"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w,
			"<form class=\"item\" action=\"/\" method=\"post\">"+
				"<input type=\"text\" name=\"newItem\" placeholder=\"New Item\" autocomplete=\"off\" required>"+
				"<button type=\"submit\" name=\"list\" value=\""+safeTitle+"\">+</button>"+
				"</form></div>"); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			"<form class=\"new-list\" action=\"/list\" method=\"post\">"+
				"<input type=\"text\" name=\"newList\" placeholder=\"New List\" autocomplete=\"off\" required>"+
				"<button type=\"submit\">Create List</button>"+
				"</form>")
		return err
	})
}

// ErrorPage renders a minimal error state.
func ErrorPage(statusCode int, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		text := http.StatusText(statusCode)
		if text == "" {
			text = "Error"
		}
		if _, err := fmt.Fprintf(w,
			"<div class=\"box\" id=\"heading\"><h1>%d %s</h1></div>",
			statusCode, templ.EscapeString(text)); err != nil {
			return err
		}
		if message == "" {
			return nil
		}
		_, err := io.WriteString(w, "<div class=\"box\"><p class=\"error\">"+templ.EscapeString(message)+"</p></div>")
		return err
	})
}
