package web

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/listkeeper/internal/list/service"
	"github.com/louisbranch/listkeeper/internal/list/storage/memory"
)

func TestRouteMethodContract(t *testing.T) {
	t.Parallel()

	store := memory.New()
	handler, err := NewHandler(Config{
		Service: service.New(store, store),
		Logger:  log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "home get", method: http.MethodGet, path: "/", wantStatus: http.StatusOK},
		{name: "home delete method", method: http.MethodDelete, path: "/", wantStatus: http.StatusMethodNotAllowed},
		{name: "delete get method", method: http.MethodGet, path: "/delete", wantStatus: http.StatusFound},
		{name: "delete put method", method: http.MethodPut, path: "/delete", wantStatus: http.StatusMethodNotAllowed},
		{name: "list name get", method: http.MethodGet, path: "/errands", wantStatus: http.StatusFound},
		{name: "nested path unmatched", method: http.MethodGet, path: "/a/b", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.wantStatus)
			}
		})
	}
}
