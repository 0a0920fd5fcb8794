package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{UserNotFoundError(nil), http.StatusNotFound},
		{QuotaExceededError(), http.StatusForbidden},
		{ErrForbidden, http.StatusForbidden},
		{ErrUnauthorized, http.StatusUnauthorized},
		{NoFileError(), http.StatusBadRequest},
		{ValidationError("bad"), http.StatusBadRequest},
		{NormalizationError(errors.New("decode")), http.StatusBadRequest},
		{ErrInvalidInput, http.StatusBadRequest},
		{StorageError(errors.New("s3 down")), http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, HTTPStatus(tc.err), "error %v", tc.err)
	}
}

func TestHTTPStatus_SurvivesWrapping(t *testing.T) {
	wrapped := WrapError(QuotaExceededError(), "reserve quota")
	require.Equal(t, http.StatusForbidden, HTTPStatus(wrapped))
}

func TestPublicMessage_HidesInternalCauses(t *testing.T) {
	msg := PublicMessage(StorageError(errors.New("AccessDenied on bucket xyz")))
	require.Equal(t, "failed to store image", msg)
	require.NotContains(t, msg, "bucket")

	msg = PublicMessage(errors.New("pq: connection refused on 10.0.0.5"))
	require.Equal(t, "internal error", msg)
}

func TestPublicMessage_KeepsRejectionText(t *testing.T) {
	require.Contains(t, PublicMessage(QuotaExceededError()), "free upload limit")
	require.Contains(t, PublicMessage(ValidationError("unsupported content type")), "unsupported content type")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("row missing")
	err := UserNotFoundError(cause)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, err, cause)
}
