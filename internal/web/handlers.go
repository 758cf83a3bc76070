package web

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/listkeeper/internal/list/service"
	"github.com/louisbranch/listkeeper/internal/web/apperrors"
	"github.com/louisbranch/listkeeper/internal/web/httpx"
	"github.com/louisbranch/listkeeper/internal/web/templates"
)

type handlers struct {
	service *service.Service
}

func (h *handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ResolveToday(httpx.RequestContext(r))
	if err != nil {
		h.renderError(w, r, apperrors.FromService(err))
		return
	}
	h.renderView(w, r, view)
}

func (h *handlers) handleList(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("listName")
	resolution, err := h.service.ResolveOrCreate(httpx.RequestContext(r), name)
	if err != nil {
		h.renderError(w, r, apperrors.FromService(err))
		return
	}
	if resolution.ShouldRedirect() {
		httpx.WriteRedirect(w, r, resolution.RedirectPath)
		return
	}
	h.renderView(w, r, resolution.View)
}

func (h *handlers) handleAddItem(w http.ResponseWriter, r *http.Request) {
	itemText := r.PostFormValue("newItem")
	listName := r.PostFormValue("list")

	path, err := h.service.AddItem(httpx.RequestContext(r), listName, itemText)
	if err != nil {
		h.renderError(w, r, apperrors.FromService(err))
		return
	}
	httpx.WriteRedirect(w, r, path)
}

func (h *handlers) handleCreateList(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("newList")
	if _, err := h.service.ResolveOrCreate(httpx.RequestContext(r), name); err != nil {
		h.renderError(w, r, apperrors.FromService(err))
		return
	}
	httpx.WriteRedirect(w, r, service.PathFor(name))
}

func (h *handlers) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PostFormValue("checkbox")
	listName := r.PostFormValue("checkedListName")

	path, _, err := h.service.DeleteItem(httpx.RequestContext(r), listName, itemID)
	if err != nil && !errors.Is(err, service.ErrListNotFound) {
		h.renderError(w, r, apperrors.FromService(err))
		return
	}
	httpx.WriteRedirect(w, r, path)
}

func (h *handlers) renderView(w http.ResponseWriter, r *http.Request, view service.View) {
	rows := make([]templates.ItemRow, 0, len(view.Items))
	for _, item := range view.Items {
		rows = append(rows, templates.ItemRow{ID: item.ID, Name: item.Name})
	}
	h.renderPage(w, r, view.Title, templates.ListPage(view.Title, rows))
}

func (h *handlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	message := ""
	var appErr apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	h.writeComponent(w, r, "Error", templates.ErrorPage(status, message))
}

func (h *handlers) renderPage(w http.ResponseWriter, r *http.Request, title string, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.writeComponent(w, r, title, body)
}

func (h *handlers) writeComponent(w http.ResponseWriter, r *http.Request, title string, body templ.Component) {
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := templates.Layout(title).Render(ctx, w); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnknown, "render page"))
	}
}
