package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", Unauthenticated("no session"), http.StatusUnauthorized},
		{"forbidden", Forbidden("not a member"), http.StatusForbidden},
		{"validation", Validation("amount required"), http.StatusBadRequest},
		{"not_found", NotFound("expense not found"), http.StatusNotFound},
		{"dependency", Dependency("store unreachable", errors.New("dial tcp")), http.StatusInternalServerError},
		{"plain_error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestKindOfWrappedError(t *testing.T) {
	inner := NotFound("project not found")
	wrapped := fmt.Errorf("append note: %w", inner)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestDependencyUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Dependency("could not check membership", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "could not check membership")
	assert.Contains(t, err.Error(), "connection reset")
}
