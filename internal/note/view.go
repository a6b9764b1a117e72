package note

import (
	"sort"
	"strings"
)

// Visible derives the display list from the collection and a search term:
// an empty term keeps every note, otherwise a case-insensitive substring
// match against title or content filters the list. The result is stably
// sorted by LastEdited descending; notes with equal timestamps keep their
// storage order. Pure: never mutates the input and never persists.
func Visible(notes []Note, searchTerm string) []Note {
	term := strings.ToLower(searchTerm)
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if term == "" ||
			strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Content), term) {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastEdited > out[j].LastEdited
	})
	return out
}

// Selected returns the note with the given id, if present.
func Selected(notes []Note, id string) (Note, bool) {
	if id == "" {
		return Note{}, false
	}
	for _, n := range notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}
