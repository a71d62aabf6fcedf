package disjointset

// Keyed is a union-find over arbitrary comparable keys. Each key receives a
// dense ID the first time it is referenced; the partition itself lives in a
// slice-backed DisjointSet over those IDs.
type Keyed[K comparable] struct {
	ids  map[K]int
	keys []K // keys[id] is the key that was assigned id
	set  *DisjointSet
}

// NewKeyed returns an empty Keyed set.
func NewKeyed[K comparable]() *Keyed[K] {
	return &Keyed[K]{
		ids: make(map[K]int),
		set: New(0),
	}
}

// ID returns the dense ID of k, creating a singleton for it if k is new.
func (s *Keyed[K]) ID(k K) int {
	if id, ok := s.ids[k]; ok {
		return id
	}
	id := s.set.Add()
	s.ids[k] = id
	s.keys = append(s.keys, k)

	return id
}

// Lookup returns the dense ID of k without creating it.
func (s *Keyed[K]) Lookup(k K) (int, bool) {
	id, ok := s.ids[k]
	return id, ok
}

// Key returns the key assigned the given dense ID.
func (s *Keyed[K]) Key(id int) K {
	return s.keys[id]
}

// Find returns the key at the root of k's set. Unknown keys are created as
// singletons and are their own root.
func (s *Keyed[K]) Find(k K) K {
	return s.keys[s.set.Find(s.ID(k))]
}

// Union merges the sets of a and b, creating either key if needed.
// The return value follows DisjointSet.Union.
func (s *Keyed[K]) Union(a, b K) bool {
	return s.set.Union(s.ID(a), s.ID(b))
}

// Connected reports whether a and b are known and share a set.
// Unknown keys are never connected to anything and are not created.
func (s *Keyed[K]) Connected(a, b K) bool {
	ia, okA := s.ids[a]
	ib, okB := s.ids[b]
	if !okA || !okB {
		return false
	}

	return s.set.Connected(ia, ib)
}

// Len reports how many distinct keys have been seen.
func (s *Keyed[K]) Len() int { return len(s.keys) }

// Count reports the number of disjoint sets over the keys seen so far.
func (s *Keyed[K]) Count() int { return s.set.Count() }

// Keys returns every key in ID (first-seen) order.
func (s *Keyed[K]) Keys() []K {
	out := make([]K, len(s.keys))
	copy(out, s.keys)

	return out
}

// Groups returns the partition as key slices. Groups are ordered by the ID of
// their earliest key and keys within a group keep first-seen order.
func (s *Keyed[K]) Groups() [][]K {
	sets := s.set.Sets()
	out := make([][]K, len(sets))
	for i, ids := range sets {
		group := make([]K, len(ids))
		for j, id := range ids {
			group[j] = s.keys[id]
		}
		out[i] = group
	}

	return out
}
