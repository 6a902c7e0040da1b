package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customError struct {
	Msg string
}

func (e customError) Error() string { return e.Msg }

func TestNew(t *testing.T) {
	err := New("test error")
	require.Error(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped: base error", wrapped.Error())
		assert.ErrorIs(t, wrapped, baseErr)
	})

	t.Run("wrap nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "wrapped"))
	})
}

func TestWrapf(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrapf non-nil error", func(t *testing.T) {
		wrapped := Wrapf(baseErr, "wrapped %d", 123)
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped 123: base error", wrapped.Error())
		assert.ErrorIs(t, wrapped, baseErr)
	})

	t.Run("wrapf nil error", func(t *testing.T) {
		assert.NoError(t, Wrapf(nil, "wrapped %d", 123))
	})
}

func TestIs(t *testing.T) {
	assert.True(t, Is(ErrNotFound, ErrNotFound))
	assert.True(t, Is(Wrap(ErrNotFound, "context"), ErrNotFound))
	assert.False(t, Is(ErrNotFound, ErrConflict))
}

func TestAs(t *testing.T) {
	wrapped := Wrap(customError{Msg: "custom"}, "context")

	var target customError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "custom", target.Msg)
}

func TestStandardErrors(t *testing.T) {
	tests := []struct {
		err  error
		text string
	}{
		{ErrNotFound, "not found"},
		{ErrConflict, "conflict"},
		{ErrInvalidInput, "invalid input"},
		{ErrUnauthorized, "unauthorized"},
		{ErrTransport, "transport error"},
		{ErrPartialBatch, "partial batch failure"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.text, tt.err.Error())
	}
}

func TestCodedError(t *testing.T) {
	t.Run("Success_MessageAndKind", func(t *testing.T) {
		err := InvalidInput("EmptyTable", "table is empty for %s", "insert")

		assert.Equal(t, "EmptyTable: table is empty for insert", err.Error())
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.NotErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, Code("EmptyTable"), CodeOf(err))
	})

	t.Run("Success_CodeSurvivesWrapping", func(t *testing.T) {
		err := Wrap(Unauthorized("TokenExpired", "token expired"), "dispatch")

		assert.True(t, HasCode(err, "TokenExpired"))
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Success_HTTPDetailsInMessage", func(t *testing.T) {
		err := &Error{
			Kind:       ErrTransport,
			Code:       CodeHTTPError,
			Message:    "invalid field",
			HTTPStatus: 400,
			RequestID:  "req-1",
		}

		assert.Equal(t, "HTTPError: invalid field (http_status=400, request_id=req-1)", err.Error())
	})

	t.Run("Success_WithCause", func(t *testing.T) {
		cause := errors.New("dial tcp: refused")
		err := NewCoded(ErrTransport, CodeNetworkError, "request failed").WithCause(cause)

		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrTransport)
		assert.Contains(t, err.Error(), "dial tcp: refused")
	})

	t.Run("Error_NoCodeOnPlainError", func(t *testing.T) {
		assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
		assert.False(t, HasCode(nil, "X"))
	})
}

func TestIsConfigError(t *testing.T) {
	assert.True(t, IsConfigError(NewCoded(ErrConflict, "DuplicateConfig", "duplicate")))
	assert.True(t, IsConfigError(NewCoded(ErrNotFound, "ConfigNotFound", "missing")))
	assert.False(t, IsConfigError(InvalidInput("EmptyTable", "empty")))
}
