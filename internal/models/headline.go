package models

import "time"

type Page struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
	FetchedAt   time.Time
}

// HeadlineSet is a set of strings that remembers insertion order.
type HeadlineSet struct {
	seen  map[string]struct{}
	items []string
}

func NewHeadlineSet() *HeadlineSet {
	return &HeadlineSet{
		seen: make(map[string]struct{}),
	}
}

// Add inserts s and reports whether it was not already present.
func (hs *HeadlineSet) Add(s string) bool {
	if _, ok := hs.seen[s]; ok {
		return false
	}
	hs.seen[s] = struct{}{}
	hs.items = append(hs.items, s)
	return true
}

func (hs *HeadlineSet) Contains(s string) bool {
	_, ok := hs.seen[s]
	return ok
}

func (hs *HeadlineSet) Len() int {
	return len(hs.items)
}

// Items returns a copy of the values in first-seen order.
func (hs *HeadlineSet) Items() []string {
	out := make([]string, len(hs.items))
	copy(out, hs.items)
	return out
}
