package account

import "time"

// Record is the persisted state of one lab account. It is stored as JSON
// under the account's cache key and fully overwritten on every write; the
// store has no notion of a partial field update, so mutating operations
// synthesize the next record from the previous read.
//
// Nullable attributes are pointers: nil marshals to JSON null, which keeps
// every write carrying all five fields.
type Record struct {
	// AssignedTS is the assignment timestamp, or nil when the account is
	// not currently assigned. Serialized as an RFC 3339 string.
	AssignedTS *time.Time `json:"assignedTs"`

	// Username duplicates the account name for display and debugging.
	Username string `json:"username"`

	// Email and IP identify the current (or most recent) assignee.
	Email *string `json:"email"`
	IP    *string `json:"ip"`

	// Disabled removes the account from the assignable set without touching
	// its assignment state. The two axes are independent: a disabled account
	// can still carry a stale assignment.
	Disabled bool `json:"disabled"`
}

// clone returns a copy that shares no pointers with the receiver, so callers
// cannot reach back into cached state through a returned record.
func (r Record) clone() Record {
	out := r
	if r.AssignedTS != nil {
		ts := *r.AssignedTS
		out.AssignedTS = &ts
	}
	if r.Email != nil {
		email := *r.Email
		out.Email = &email
	}
	if r.IP != nil {
		ip := *r.IP
		out.IP = &ip
	}
	return out
}
