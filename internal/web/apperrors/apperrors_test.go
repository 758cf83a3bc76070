package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/louisbranch/listkeeper/internal/list/service"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: E(KindInvalidInput, "empty name"), want: http.StatusBadRequest},
		{name: "not found", err: E(KindNotFound, "no such list"), want: http.StatusNotFound},
		{name: "unavailable", err: E(KindUnavailable, "store down"), want: http.StatusServiceUnavailable},
		{name: "unknown kind", err: E(KindUnknown, "boom"), want: http.StatusInternalServerError},
		{name: "untyped", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestFromServiceClassifiesSentinels(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(FromService(service.ErrListNotFound)); got != http.StatusNotFound {
		t.Fatalf("list-not-found status = %d, want %d", got, http.StatusNotFound)
	}
	if got := HTTPStatus(FromService(fmt.Errorf("add item: %w", service.ErrEmptyName))); got != http.StatusBadRequest {
		t.Fatalf("empty-name status = %d, want %d", got, http.StatusBadRequest)
	}
	if got := HTTPStatus(FromService(errors.New("disk failure"))); got != http.StatusServiceUnavailable {
		t.Fatalf("storage-failure status = %d, want %d", got, http.StatusServiceUnavailable)
	}
}

func TestFromServiceKeepsTypedErrors(t *testing.T) {
	t.Parallel()

	typed := E(KindInvalidInput, "bad form")
	if got := FromService(typed); !errors.Is(got, typed) {
		t.Fatalf("expected typed error preserved, got %v", got)
	}
	if FromService(nil) != nil {
		t.Fatal("expected nil passthrough")
	}
}

func TestErrorMessageFallsBackToKind(t *testing.T) {
	t.Parallel()

	if got := (Error{Kind: KindNotFound}).Error(); got != "not_found" {
		t.Fatalf("Error() = %q, want %q", got, "not_found")
	}
}
