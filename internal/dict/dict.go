// Package dict provides the immutable word set the engine validates
// submissions against. It is loaded once at startup and shared
// read-only across all rooms.
package dict

import "strings"

type Dictionary struct {
	words map[string]struct{}
}

func New(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		d.words[w] = struct{}{}
	}
	return d
}

func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[strings.ToUpper(word)]
	return ok
}

func (d *Dictionary) Len() int {
	return len(d.words)
}
