package usecase

import (
	"bytes"
	"sort"

	"parking-allocator/internal/domain/request"
)

// requestSet is the updater's working copy of requests: latest write for a
// (user, date) key wins. Snapshots come out ordered by date then user so the
// sorter's stable tie-breaking is deterministic run to run.
type requestSet struct {
	byKey map[request.Key]request.Request
}

func newRequestSet(requests []request.Request) *requestSet {
	s := &requestSet{byKey: make(map[request.Key]request.Request, len(requests))}
	for _, r := range requests {
		s.put(r)
	}
	return s
}

func (s *requestSet) put(r request.Request) {
	s.byKey[r.Key()] = r
}

func (s *requestSet) snapshot() []request.Request {
	out := make([]request.Request, 0, len(s.byKey))
	for _, r := range s.byKey {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Date.Compare(out[j].Date); c != 0 {
			return c < 0
		}
		return bytes.Compare(out[i].UserID[:], out[j].UserID[:]) < 0
	})
	return out
}
