// Package pool groups the configured range of lab accounts behind one
// service: it builds Accounts with the configured naming, reports pool-wide
// status and offers record purging for operators. Purge is deliberately not
// an Account operation; the account state machine never deletes its record.
package pool

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/labpool/internal/account"
	"github.com/dmitrijs2005/labpool/internal/clock"
	"github.com/dmitrijs2005/labpool/internal/common"
	"github.com/dmitrijs2005/labpool/internal/logging"
	"github.com/dmitrijs2005/labpool/internal/store"
)

// Status is one row of the pool listing.
type Status struct {
	Num        int
	Username   string
	Assigned   bool
	Disabled   bool
	Assignable bool
	Email      string
	IP         string
}

type Pool struct {
	naming account.Naming
	size   int
	store  store.Store
	clock  clock.Clock
	log    logging.Logger
}

// New builds a Pool over accounts 1..size.
func New(naming account.Naming, size int, st store.Store, clk clock.Clock, log logging.Logger) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: pool size must be positive, got %d", common.ErrInvalidArgument, size)
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Pool{naming: naming, size: size, store: st, clock: clk, log: log}, nil
}

// Size returns the number of accounts in the pool.
func (p *Pool) Size() int {
	return p.size
}

// Account builds the handle for index num, tagging its diagnostics with a
// fresh operation id.
func (p *Pool) Account(num int) (*account.Account, error) {
	return account.New(num, p.naming, p.store, p.clock, p.log.With("op_id", uuid.NewString()))
}

// Statuses reads every account record in the pool and reports its state.
// Reads are plain record lookups; a never-written account shows up as free.
func (p *Pool) Statuses(ctx context.Context) ([]Status, error) {
	out := make([]Status, 0, p.size)

	for num := 1; num <= p.size; num++ {
		a, err := p.Account(num)
		if err != nil {
			return nil, err
		}

		rec, err := a.Record(ctx)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", a.Username(), err)
		}

		s := Status{
			Num:        num,
			Username:   a.Username(),
			Assigned:   rec.AssignedTS != nil,
			Disabled:   rec.Disabled,
			Assignable: rec.AssignedTS == nil && !rec.Disabled,
		}
		if rec.Email != nil {
			s.Email = *rec.Email
		}
		if rec.IP != nil {
			s.IP = *rec.IP
		}
		out = append(out, s)
	}

	return out, nil
}

// Purge deletes the record for index num from the store outright. The next
// read sees the default free record.
func (p *Pool) Purge(ctx context.Context, num int) error {
	a, err := p.Account(num)
	if err != nil {
		return err
	}

	p.log.Info(ctx, "purging account record", "key", a.Key())

	return p.store.Del(ctx, a.Key())
}
