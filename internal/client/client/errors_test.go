package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesKindSentinel(t *testing.T) {
	tests := []struct {
		kind Kind
		want error
	}{
		{KindTransport, ErrUnavailable},
		{KindUnauthorized, ErrUnauthorized},
		{KindNotFound, ErrNotFound},
		{KindValidation, ErrValidation},
		{KindServer, ErrServer},
		{KindDecode, ErrDecode},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &Error{Kind: tt.kind, Op: "op"})
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}

	assert.NotErrorIs(t, &Error{Kind: KindServer}, ErrUnavailable)
}

func TestError_Message(t *testing.T) {
	e := &Error{Kind: KindServer, Op: "delete photo", Message: "gone", Err: errors.New("cause")}
	assert.Equal(t, "delete photo: gone: cause", e.Error())
	assert.Equal(t, "gone", MessageOf(e))

	e = &Error{Kind: KindTransport}
	assert.Equal(t, "transport", e.Error())

	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
	assert.Empty(t, MessageOf(nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, Kind(""), KindOf(errors.New("x")))
	assert.Equal(t, KindTransport, KindOf(context.DeadlineExceeded))
	assert.Equal(t, KindTransport, KindOf(fmt.Errorf("x: %w", context.Canceled)))
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("create album", "album name is required")
	require.ErrorIs(t, err, ErrValidation)
	assert.False(t, err.Kind.Retryable())
	assert.Equal(t, "album name is required", MessageOf(err))
}
