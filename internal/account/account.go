// Package account implements the lab-account state machine over an opaque
// key-value store. An Account is a named handle on one cache record; all
// state transitions are read-compute-write sequences over that record.
//
// There is no compare-and-swap on the store, so the read-then-write
// operations (Unassign, Enable, Disable) have a race window: a concurrent
// write landing between the read and the write is silently clobbered and the
// last writer wins. That weak consistency is part of the contract, not an
// oversight; callers that need stronger guarantees have to serialize access
// themselves.
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/labpool/internal/clock"
	"github.com/dmitrijs2005/labpool/internal/common"
	"github.com/dmitrijs2005/labpool/internal/logging"
	"github.com/dmitrijs2005/labpool/internal/store"
)

// keyPrefix namespaces account records in the shared store.
const keyPrefix = "user:"

// Naming carries the account-naming configuration. It is passed explicitly
// at construction so identity never depends on ambient global state.
type Naming struct {
	// Prefix is prepended to the numeric index ("lab" -> "lab7").
	Prefix string
	// PadZeroes inserts a single zero for single-digit indexes ("lab07").
	PadZeroes bool
}

// Account is a stateful handle over one cache record. Identity (username and
// cache key) is computed once at construction and is immutable; two Accounts
// built from the same (num, naming) pair reference the same record.
type Account struct {
	num      int
	username string
	key      string
	store    store.Store
	clock    clock.Clock
	log      logging.Logger
}

// New builds the Account for index num. It fails with common.ErrNotConfigured
// when the naming prefix is missing and with common.ErrInvalidArgument for a
// negative index. clk and log may be nil; real time and a discard logger are
// used then.
func New(num int, naming Naming, st store.Store, clk clock.Clock, log logging.Logger) (*Account, error) {
	if naming.Prefix == "" {
		return nil, fmt.Errorf("%w: account name prefix is empty", common.ErrNotConfigured)
	}
	if num < 0 {
		return nil, fmt.Errorf("%w: account index must be non-negative, got %d", common.ErrInvalidArgument, num)
	}

	username := naming.Prefix
	if num < 10 && naming.PadZeroes {
		username += "0"
	}
	username += strconv.Itoa(num)

	if clk == nil {
		clk = &clock.RealClock{}
	}
	if log == nil {
		log = logging.Discard()
	}

	return &Account{
		num:      num,
		username: username,
		key:      keyPrefix + username,
		store:    st,
		clock:    clk,
		log:      log.With("account", username),
	}, nil
}

// Num returns the numeric index the account was built from.
func (a *Account) Num() int {
	return a.num
}

// Username returns the canonical account name.
func (a *Account) Username() string {
	return a.username
}

// Key returns the cache key the record lives under.
func (a *Account) Key() string {
	return a.key
}

// lookup fetches the current record. An absent key yields the default record
// {username} with found=false and is not an error; present bytes that fail to
// decode are a corrupt-record error, never a silent default.
func (a *Account) lookup(ctx context.Context) (Record, bool, error) {
	b, err := a.store.Get(ctx, a.key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return Record{Username: a.username}, false, nil
		}
		return Record{}, false, err
	}

	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return Record{}, false, fmt.Errorf("%w: key %s: %v", common.ErrCorruptRecord, a.key, err)
	}

	return rec, true, nil
}

// save encodes rec and overwrites the stored record unconditionally.
func (a *Account) save(ctx context.Context, rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", a.key, err)
	}

	a.log.Debug(ctx, "writing record", "key", a.key, "record", string(b))

	return a.store.Set(ctx, a.key, b)
}

// Record returns the current record, or the default {username} record when
// none has ever been written. The default is never persisted by a read. The
// returned record shares no pointers with cached state.
func (a *Account) Record(ctx context.Context) (Record, error) {
	rec, found, err := a.lookup(ctx)
	if err != nil {
		return Record{}, err
	}

	a.log.Debug(ctx, "record loaded", "key", a.key, "found", found)

	return rec.clone(), nil
}

// UserInfo is an alias of Record kept for callers that think in terms of
// "who holds this account".
func (a *Account) UserInfo(ctx context.Context) (Record, error) {
	return a.Record(ctx)
}

// IsAssignable reports whether the account can be handed out: no assignment
// timestamp and not disabled. A never-written account is assignable.
func (a *Account) IsAssignable(ctx context.Context) (bool, error) {
	rec, _, err := a.lookup(ctx)
	if err != nil {
		return false, err
	}

	ok := rec.AssignedTS == nil && !rec.Disabled
	a.log.Info(ctx, "assignability check", "assignable", ok, "disabled", rec.Disabled)

	return ok, nil
}

// IsAssigned reports whether the account currently carries an assignment
// timestamp. A disabled account can still be assigned; only IsAssignable is
// forced false by the disabled flag.
func (a *Account) IsAssigned(ctx context.Context) (bool, error) {
	rec, _, err := a.lookup(ctx)
	if err != nil {
		return false, err
	}

	assigned := rec.AssignedTS != nil
	a.log.Info(ctx, "assignment check", "assigned", assigned)

	return assigned, nil
}

// Assign hands the account to the requester identified by ip and email. Both
// must be non-empty or the call fails with common.ErrInvalidArgument before
// any store access. Assign does not read the prior record: it writes a brand
// new one, so a previously set disabled flag does not survive. Unassign, by
// contrast, preserves it. That asymmetry mirrors the observed production
// behavior and is kept on purpose.
func (a *Account) Assign(ctx context.Context, ip, email string) error {
	if ip == "" || email == "" {
		return fmt.Errorf("%w: ip and email are required", common.ErrInvalidArgument)
	}

	now := a.clock.Now().UTC()
	rec := Record{
		AssignedTS: &now,
		Username:   a.username,
		Email:      &email,
		IP:         &ip,
		Disabled:   false,
	}

	a.log.Info(ctx, "assigning account", "ip", ip, "email", email)

	return a.save(ctx, rec)
}

// Unassign releases the account: assignment timestamp and requester contact
// are cleared, the disabled flag of the record read at the start of the call
// is carried over.
func (a *Account) Unassign(ctx context.Context) error {
	rec, _, err := a.lookup(ctx)
	if err != nil {
		return err
	}

	next := Record{
		Username: a.username,
		Disabled: rec.Disabled,
	}

	a.log.Info(ctx, "unassigning account", "was_disabled", rec.Disabled)

	return a.save(ctx, next)
}

// Enable clears the disabled flag, preserving assignment state.
func (a *Account) Enable(ctx context.Context) error {
	return a.setDisabled(ctx, false)
}

// Disable sets the disabled flag. It does not clear the assignment
// timestamp: a disabled account can still report IsAssigned.
func (a *Account) Disable(ctx context.Context) error {
	return a.setDisabled(ctx, true)
}

func (a *Account) setDisabled(ctx context.Context, disabled bool) error {
	rec, _, err := a.lookup(ctx)
	if err != nil {
		return err
	}

	rec.Disabled = disabled

	a.log.Info(ctx, "updating disabled flag", "disabled", disabled)

	return a.save(ctx, rec)
}
