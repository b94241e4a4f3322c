package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"vidtube/domain/apperror"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(apperror.NewValidation("bad")))
	assert.Equal(t, http.StatusUnauthorized, apperror.StatusOf(apperror.NewAuth("who")))
	assert.Equal(t, http.StatusNotFound, apperror.StatusOf(apperror.NewNotFound("gone")))
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusOf(apperror.NewUpstream("broke", nil)))
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusOf(errors.New("untyped")))
}

func TestMessageOf_NeverLeaksInternals(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.3:27017: connection refused")
	err := apperror.NewUpstream("stats retrieval failed", cause)

	assert.Equal(t, "stats retrieval failed", apperror.MessageOf(err))
	// The cause stays reachable for logs.
	assert.True(t, errors.Is(err, cause))

	assert.Equal(t, "internal server error", apperror.MessageOf(errors.New("raw driver error")))
}

func TestStatusOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", apperror.NewNotFound("video not found"))
	assert.Equal(t, http.StatusNotFound, apperror.StatusOf(err))
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRetryable(t *testing.T) {
	assert.True(t, apperror.Retryable(apperror.NewUpstream("try again", nil)))
	assert.False(t, apperror.Retryable(apperror.NewValidation("fix the request")))
	assert.False(t, apperror.Retryable(apperror.NewNotFound("gone")))
}
