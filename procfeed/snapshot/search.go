package snapshot

import "github.com/Gthulhu/procfeed/procfeed/domain"

// Search returns the entries of snap matching every constraint set in query,
// in their original order. An empty query returns a copy of snap.
func Search(snap domain.Snapshot, query domain.SearchQuery) domain.Snapshot {
	out := make(domain.Snapshot, 0, len(snap))
	for _, entry := range snap {
		if query.PID != nil && entry.PID != *query.PID {
			continue
		}
		if query.OwnerName != nil && entry.OwnerName != *query.OwnerName {
			continue
		}
		out = append(out, entry)
	}
	return out
}
