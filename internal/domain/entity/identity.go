package entity

// IdentityState is a snapshot of the authenticated identity driving the
// notification sync lifecycle. An unauthenticated state carries a zero
// UserID.
type IdentityState struct {
	UserID        int64 `json:"user_id"`
	Authenticated bool  `json:"authenticated"`
}

// Anonymous is the identity state after logout or before login.
var Anonymous = IdentityState{}

// Equal reports whether two identity states refer to the same identity.
func (s IdentityState) Equal(other IdentityState) bool {
	return s.Authenticated == other.Authenticated && s.UserID == other.UserID
}
