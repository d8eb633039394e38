package domain_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/msomdec/account-service/internal/domain"
)

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.Validation("bad"), http.StatusBadRequest},
		{domain.Conflict("taken"), http.StatusConflict},
		{domain.Unauthorized("who"), http.StatusUnauthorized},
		{domain.Forbidden("no"), http.StatusForbidden},
		{domain.NotFound("gone"), http.StatusNotFound},
		{domain.Internal("op", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			if got := domain.KindOf(tc.err).HTTPStatus(); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", domain.Forbidden("Account is inactive"))
	if domain.KindOf(err) != domain.KindForbidden {
		t.Fatalf("expected forbidden, got %s", domain.KindOf(err))
	}
}

func TestInternal_Unwraps(t *testing.T) {
	err := domain.Internal("get user", domain.ErrNotFound)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("expected Internal to unwrap to its cause")
	}
}
