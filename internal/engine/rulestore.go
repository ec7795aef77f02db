package engine

import "sync"

// RuleStore accumulates rules in first-insertion order, keyed by their
// media/selector identity. Re-inserting a key overwrites the stored
// declarations while keeping the original position, so the latest
// definition wins without disturbing cascade order.
type RuleStore struct {
	mu    sync.Mutex
	order []string
	rules map[string]Rule
}

// NewRuleStore returns an empty store.
func NewRuleStore() *RuleStore {
	return &RuleStore{rules: make(map[string]Rule)}
}

// Insert adds r, or replaces the existing rule with the same identity
// in place.
func (s *RuleStore) Insert(r Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := r.Key()
	if _, ok := s.rules[key]; !ok {
		s.order = append(s.order, key)
	}
	s.rules[key] = r
}

// InsertAll inserts rules in slice order under a single lock.
func (s *RuleStore) InsertAll(rules []Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rules {
		key := r.Key()
		if _, ok := s.rules[key]; !ok {
			s.order = append(s.order, key)
		}
		s.rules[key] = r
	}
}

// Len reports the number of distinct rules held.
func (s *RuleStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Rules returns the stored rules in insertion order.
func (s *RuleStore) Rules() []Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Rule, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.rules[key])
	}
	return out
}

// Replace swaps the store's contents for rules, preserving their slice
// order. The shaker uses this to commit an optimized rule set.
func (s *RuleStore) Replace(rules []Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = s.order[:0]
	s.rules = make(map[string]Rule, len(rules))
	for _, r := range rules {
		key := r.Key()
		if _, ok := s.rules[key]; !ok {
			s.order = append(s.order, key)
		}
		s.rules[key] = r
	}
}
