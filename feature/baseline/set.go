package baseline

import "sort"

// Set is the collection of SKUs known to already exist downstream.
type Set map[string]struct{}

// NewSet builds a Set from a list of SKUs.
func NewSet(skus ...string) Set {
	s := make(Set, len(skus))
	for _, sku := range skus {
		s.Add(sku)
	}
	return s
}

// Contains reports whether sku is part of the baseline.
func (s Set) Contains(sku string) bool {
	_, ok := s[sku]
	return ok
}

// Add inserts sku into the set. Empty SKUs are ignored.
func (s Set) Add(sku string) {
	if sku == "" {
		return
	}
	s[sku] = struct{}{}
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for sku := range s {
		c[sku] = struct{}{}
	}
	return c
}

// SKUs returns the members in sorted order for stable persistence.
func (s Set) SKUs() []string {
	skus := make([]string, 0, len(s))
	for sku := range s {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	return skus
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}
