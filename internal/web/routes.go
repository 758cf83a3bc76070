package web

import "net/http"

func registerRoutes(mux *http.ServeMux, h *handlers) {
	mux.HandleFunc("GET /{$}", h.handleHome)
	mux.HandleFunc("POST /{$}", h.handleAddItem)
	mux.HandleFunc("POST /list", h.handleCreateList)
	mux.HandleFunc("POST /delete", h.handleDeleteItem)
	mux.HandleFunc("GET /{listName}", h.handleList)
}
