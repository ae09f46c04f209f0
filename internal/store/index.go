package store

import "slices"

// idSet is a set of book ids. Sets handed out by the store are never mutated afterwards.
type idSet map[int64]struct{}

func (s idSet) has(id int64) bool {
	_, ok := s[id]
	return ok
}

// intersect returns a new set holding the ids present in both sets.
func (s idSet) intersect(other idSet) idSet {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	out := make(idSet, len(small))
	for id := range small {
		if large.has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// union returns a new set holding the ids present in either set.
func (s idSet) union(other idSet) idSet {
	out := make(idSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// sorted returns the ids in ascending order, which is also insertion order.
func (s idSet) sorted() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// index maps a normalized key to the ids of the books carrying it.
type index map[string]idSet

func (idx index) add(key string, id int64) {
	bucket, ok := idx[key]
	if !ok {
		bucket = make(idSet)
		idx[key] = bucket
	}
	bucket[id] = struct{}{}
}

// lookup returns the bucket for key, or an empty set on a miss.
func (idx index) lookup(key string) idSet {
	if bucket, ok := idx[key]; ok {
		return bucket
	}
	return idSet{}
}
