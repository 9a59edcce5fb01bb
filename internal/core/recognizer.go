// Package core provides the domain types and classification logic for
// transaction notes.
//
// This file implements keyword-based category recognition: a note is
// matched against category names by substring containment, with a
// configurable catch-all fallback when nothing matches.
package core

import "strings"

// DefaultFallbackName is the catch-all category name. When no keyword
// matches a note, the first category carrying this exact name (equality,
// not containment) is selected.
const DefaultFallbackName = "其他"

// Recognizer classifies free-text notes into category ids.
//
// The category list is copied at construction and never mutated
// afterwards, so a single Recognizer is safe for concurrent use.
type Recognizer struct {
	categories []Category
	names      []string         // unique names, first-seen order
	byName     map[string]int64 // name -> id, later duplicates win
	fallback   string
}

// NewRecognizer builds a Recognizer over the supplied categories using
// the default fallback name.
func NewRecognizer(categories []Category) *Recognizer {
	return NewRecognizerWithFallback(categories, DefaultFallbackName)
}

// NewRecognizerWithFallback builds a Recognizer with a custom fallback
// name. An empty fallbackName selects the default.
func NewRecognizerWithFallback(categories []Category, fallbackName string) *Recognizer {
	if fallbackName == "" {
		fallbackName = DefaultFallbackName
	}
	r := &Recognizer{
		categories: append([]Category(nil), categories...),
		byName:     make(map[string]int64, len(categories)),
		fallback:   fallbackName,
	}
	for _, c := range r.categories {
		if _, seen := r.byName[c.Name]; !seen {
			r.names = append(r.names, c.Name)
		}
		r.byName[c.Name] = c.ID
	}
	return r
}

// RecognizeCategory returns the id of the first category whose name the
// note contains. Names are matched as case-sensitive substrings anywhere
// in the note, not at word boundaries, and are scanned in the order they
// were first supplied; when two categories share a name the later id
// wins. If nothing matches, the first category named exactly like the
// fallback label is selected, then the first category overall; an empty
// category set yields 0.
func (r *Recognizer) RecognizeCategory(note string) int64 {
	for _, name := range r.names {
		if strings.Contains(note, name) {
			return r.byName[name]
		}
	}
	for _, c := range r.categories {
		if c.Name == r.fallback {
			return c.ID
		}
	}
	if len(r.categories) > 0 {
		return r.categories[0].ID
	}
	return 0
}
