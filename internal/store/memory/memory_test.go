package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/labpool/internal/common"
)

func TestGet_AbsentKey(t *testing.T) {
	s := New()
	_, err := s.Get(context.Background(), "user:lab01")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user:lab01", []byte(`{"username":"lab01"}`)))

	got, err := s.Get(ctx, "user:lab01")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"username":"lab01"}`), got)
}

func TestSetGet_ValuesAreCopied(t *testing.T) {
	s := New()
	ctx := context.Background()

	src := []byte("original")
	require.NoError(t, s.Set(ctx, "k", src))
	src[0] = 'X'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("original"), again)
}

func TestDel(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Del(ctx, "k"))

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, common.ErrNotFound)

	// Deleting again is a no-op.
	require.NoError(t, s.Del(ctx, "k"))
}

func TestCancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, s.Set(ctx, "k", nil), context.Canceled)
	require.ErrorIs(t, s.Del(ctx, "k"), context.Canceled)
}
