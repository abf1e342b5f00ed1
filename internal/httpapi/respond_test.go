package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/nutrilog/internal/models"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: bad age", models.ErrValidation)), http.StatusUnprocessableEntity},
		{"invalid argument", connect.NewError(connect.CodeInvalidArgument, errors.New("x")), http.StatusBadRequest},
		{"already exists", connect.NewError(connect.CodeAlreadyExists, errors.New("x")), http.StatusBadRequest},
		{"not found", connect.NewError(connect.CodeNotFound, errors.New("x")), http.StatusNotFound},
		{"canceled", connect.NewError(connect.CodeCanceled, context.Canceled), 499},
		{"deadline", connect.NewError(connect.CodeDeadlineExceeded, context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"internal", connect.NewError(connect.CodeInternal, errors.New("x")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)

	writeError(rec, req, connect.NewError(connect.CodeInternal, errors.New("disk on fire")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, rec.Body.String())
}

func TestWriteErrorUsesConnectMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/Bob", nil)

	writeError(rec, req, connect.NewError(connect.CodeNotFound, errors.New("User, 'Bob' not found!")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"User, 'Bob' not found!"}`, rec.Body.String())
}
