package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := component.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func TestLayoutWrapsChildren(t *testing.T) {
	t.Parallel()

	body := ListPage("Today", nil)
	ctx := templ.WithChildren(context.Background(), body)

	var sb strings.Builder
	if err := Layout("Today").Render(ctx, &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := sb.String()
	for _, marker := range []string{"<title>Today</title>", "/static/app.css", "id=\"heading\"", "</html>"} {
		if !strings.Contains(html, marker) {
			t.Fatalf("layout missing %q: %s", marker, html)
		}
	}
}

func TestListPageRendersItemsInOrder(t *testing.T) {
	t.Parallel()

	html := render(t, ListPage("Groceries", []ItemRow{
		{ID: "i-1", Name: "Eggs"},
		{ID: "i-2", Name: "Milk"},
	}))

	first := strings.Index(html, "Eggs")
	second := strings.Index(html, "Milk")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("items missing or out of order: %s", html)
	}
	for _, marker := range []string{
		"value=\"i-1\"",
		"value=\"i-2\"",
		"action=\"/delete\"",
		"name=\"checkedListName\" value=\"Groceries\"",
		"name=\"newItem\"",
		"name=\"list\" value=\"Groceries\"",
		"name=\"newList\"",
	} {
		if !strings.Contains(html, marker) {
			t.Fatalf("page missing %q: %s", marker, html)
		}
	}
}

func TestListPageEscapesUserText(t *testing.T) {
	t.Parallel()

	html := render(t, ListPage("Today", []ItemRow{
		{ID: "i-1", Name: "<-- Hit this to delete an item."},
	}))
	if strings.Contains(html, "<-- Hit") {
		t.Fatalf("item name not escaped: %s", html)
	}
	if !strings.Contains(html, "&lt;-- Hit this to delete an item.") {
		t.Fatalf("expected escaped item name: %s", html)
	}
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	html := render(t, ErrorPage(404, "list not found"))
	if !strings.Contains(html, "404 Not Found") {
		t.Fatalf("missing status heading: %s", html)
	}
	if !strings.Contains(html, "list not found") {
		t.Fatalf("missing message: %s", html)
	}
}
