package apperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"plain", fmt.Errorf("boom"), KindUnknown},
		{"not found", NotFound("task not found"), KindNotFound},
		{"wrapped with pkg/errors", errors.Wrap(Forbidden("nope"), "grade submission"), KindForbidden},
		{"wrapped with %w", fmt.Errorf("submit: %w", InvalidState("task is closed")), KindInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPStatus())
	assert.Equal(t, http.StatusForbidden, KindForbidden.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, KindInvalidState.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindUnknown.HTTPStatus())
}

func TestMessageSurvivesWrapping(t *testing.T) {
	e, ok := As(errors.Wrap(NotFound("student not found"), "load"))
	assert.True(t, ok)
	assert.Equal(t, "student not found", e.Message)
}
