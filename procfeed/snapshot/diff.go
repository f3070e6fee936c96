package snapshot

import "github.com/Gthulhu/procfeed/procfeed/domain"

// Diff returns, in the order they appear in next, every entry of next that has
// no structurally equal entry in prev.
//
// Identity is the whole entry, not the pid: a reused pid with a different
// name or owner is reported as new. Entries that disappeared are not reported.
func Diff(prev, next domain.Snapshot) []domain.ProcessEntry {
	seen := make(map[domain.ProcessEntry]struct{}, len(prev))
	for _, entry := range prev {
		seen[entry] = struct{}{}
	}

	var added []domain.ProcessEntry
	for _, entry := range next {
		if _, ok := seen[entry]; ok {
			continue
		}
		added = append(added, entry)
	}
	return added
}
