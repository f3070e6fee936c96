package domain

// ProcessEntry is one observed process at one refresh instant.
//
// Equality is structural: two entries are the same only when every field
// matches. The type is comparable so it can key a map.
type ProcessEntry struct {
	PID       uint32  `json:"pid"`
	Name      string  `json:"name"`
	OwnerID   OwnerID `json:"uid"`
	OwnerName string  `json:"username"`
}

// Snapshot is the complete set of entries observed at one refresh. Order is
// not meaningful and pid uniqueness is not enforced.
type Snapshot []ProcessEntry

// Clone returns an independent copy. A nil snapshot clones to an empty one so
// it serializes as [] rather than null.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

// SearchQuery holds the optional, conjunctive search constraints. A nil field
// places no constraint on that attribute.
type SearchQuery struct {
	PID       *uint32
	OwnerName *string
}
