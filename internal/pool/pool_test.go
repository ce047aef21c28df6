package pool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/labpool/internal/account"
	"github.com/dmitrijs2005/labpool/internal/clock"
	"github.com/dmitrijs2005/labpool/internal/common"
	"github.com/dmitrijs2005/labpool/internal/store/memory"
)

func newTestPool(t *testing.T, size int) (*Pool, *memory.Store) {
	t.Helper()
	st := memory.New()
	clk := clock.NewFakeClock(time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC))
	p, err := New(account.Naming{Prefix: "lab", PadZeroes: true}, size, st, clk, nil)
	require.NoError(t, err)
	return p, st
}

func TestNew_RejectsNonPositiveSize(t *testing.T) {
	_, err := New(account.Naming{Prefix: "lab"}, 0, memory.New(), nil, nil)
	require.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestStatuses(t *testing.T) {
	p, _ := newTestPool(t, 3)
	ctx := context.Background()

	a1, err := p.Account(1)
	require.NoError(t, err)
	require.NoError(t, a1.Assign(ctx, "1.2.3.4", "a@b.com"))

	a2, err := p.Account(2)
	require.NoError(t, err)
	require.NoError(t, a2.Disable(ctx))

	statuses, err := p.Statuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	require.Equal(t, "lab01", statuses[0].Username)
	require.True(t, statuses[0].Assigned)
	require.False(t, statuses[0].Assignable)
	require.Equal(t, "a@b.com", statuses[0].Email)
	require.Equal(t, "1.2.3.4", statuses[0].IP)

	require.Equal(t, "lab02", statuses[1].Username)
	require.True(t, statuses[1].Disabled)
	require.False(t, statuses[1].Assignable)

	require.Equal(t, "lab03", statuses[2].Username)
	require.True(t, statuses[2].Assignable)
	require.False(t, statuses[2].Assigned)
}

func TestPurge(t *testing.T) {
	p, st := newTestPool(t, 2)
	ctx := context.Background()

	a, err := p.Account(1)
	require.NoError(t, err)
	require.NoError(t, a.Assign(ctx, "1.2.3.4", "a@b.com"))
	require.NoError(t, a.Disable(ctx))

	require.NoError(t, p.Purge(ctx, 1))

	_, err = st.Get(ctx, a.Key())
	require.ErrorIs(t, err, common.ErrNotFound)

	// After the purge the account reads as the free default again.
	assignable, err := a.IsAssignable(ctx)
	require.NoError(t, err)
	require.True(t, assignable)
}
