package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestServiceError_StatusCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{BadRequestError(nil, "bad"), http.StatusBadRequest},
		{UnAuthorizedError(nil, "who"), http.StatusUnauthorized},
		{ForbiddenError(nil, "no"), http.StatusForbidden},
		{ResourceNotFoundError(nil, "gone"), http.StatusNotFound},
		{ConflictError(nil, "taken"), http.StatusConflict},
		{DependencyFailureError(nil, "down"), http.StatusBadGateway},
		{GeneralError(nil), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		var svcErr *ServiceError
		assert.True(t, errors.As(tc.err, &svcErr))
		assert.Equal(t, tc.code, svcErr.StatusCode(), svcErr.Category.String())
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	err := ResourceNotFoundError(fmt.Errorf("%w: ethereum", errSentinel), "chain not found")

	assert.ErrorIs(t, err, errSentinel)
	assert.Equal(t, "sentinel: ethereum", err.Error())
	assert.True(t, Is(err, CategoryResourceNotFound))
	assert.False(t, Is(err, CategoryDataError))
	assert.True(t, Is(fmt.Errorf("wrapped: %w", err), CategoryResourceNotFound))
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryNoError, CategoryOf(nil))
	assert.Equal(t, CategoryGeneralError, CategoryOf(errSentinel))
	assert.Equal(t, CategoryDataConflict, CategoryOf(ConflictError(errSentinel, "taken")))
	assert.Equal(t, "Internal Server Error", GeneralError(errSentinel).(*ServiceError).Message)
}
