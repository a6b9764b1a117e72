package note

import (
	"slices"
	"time"
)

// Seed note, materialized on first run or when stored data is unreadable.
// It guarantees the interface is never empty on a fresh start.
const (
	seedTitle   = "Welcome to the Notes App!"
	seedContent = "This is your local scratchpad.\n\n" +
		"Press n to create a note, / to search, enter to edit, and x to delete.\n" +
		"Everything is stored on this device only."
)

// Store owns the authoritative in-memory note collection and the current
// selection. All mutations go through Create, Update, and Delete; every
// mutation pushes the full snapshot to the persistence adapter before
// returning. Storage order is newest-created first.
type Store struct {
	adapter  *Adapter
	notes    []Note
	selected string

	// Overridable for tests.
	now   func() time.Time
	newID func() string
}

// NewStore loads the persisted collection through the adapter, seeding the
// welcome note when nothing usable is stored. The first note in storage
// order starts selected.
func NewStore(adapter *Adapter) *Store {
	s := &Store{adapter: adapter, now: time.Now, newID: NewID}
	if notes, ok := adapter.Load(); ok {
		s.notes = notes
	} else {
		s.notes = []Note{{
			ID:         s.newID(),
			Title:      seedTitle,
			Content:    seedContent,
			LastEdited: s.now().UnixMilli(),
		}}
		adapter.Save(s.notes)
	}
	if len(s.notes) > 0 {
		s.selected = s.notes[0].ID
	}
	return s
}

// Notes returns a copy of the collection in storage order. Callers read it;
// only the store mutates it.
func (s *Store) Notes() []Note {
	return slices.Clone(s.notes)
}

// Len returns the number of notes in the collection.
func (s *Store) Len() int {
	return len(s.notes)
}

// SelectedID returns the id of the selected note, or "" when none.
func (s *Store) SelectedID() string {
	return s.selected
}

// Select moves the selection to the given id. Selecting an id that is not in
// the collection clears the selection, matching the weak-reference contract.
func (s *Store) Select(id string) {
	if _, ok := Selected(s.notes, id); ok {
		s.selected = id
		return
	}
	s.selected = ""
}

// Create adds a new note at the front of the collection, persists, and
// selects it. A blank title becomes DefaultTitle.
func (s *Store) Create(title, content string) Note {
	n := Note{
		ID:         s.newID(),
		Title:      NormalizeTitle(title),
		Content:    content,
		LastEdited: s.now().UnixMilli(),
	}
	s.notes = append([]Note{n}, s.notes...)
	s.selected = n.ID
	s.adapter.Save(s.notes)
	return n
}

// Update replaces the title and content of an existing note, refreshes its
// timestamp, persists, and selects it. Unknown ids are a silent no-op.
func (s *Store) Update(id, title, content string) {
	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		ts := s.now().UnixMilli()
		if ts <= s.notes[i].LastEdited {
			// Clock granularity: keep LastEdited strictly increasing.
			ts = s.notes[i].LastEdited + 1
		}
		s.notes[i].Title = NormalizeTitle(title)
		s.notes[i].Content = content
		s.notes[i].LastEdited = ts
		s.selected = id
		s.adapter.Save(s.notes)
		return
	}
}

// Delete removes the note with the given id and persists. Unknown ids are a
// silent no-op. When the selected note is deleted, selection moves to the
// note immediately preceding it in storage order, falling back to the new
// first note, or to none when the collection is empty.
func (s *Store) Delete(id string) {
	idx := slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
	if idx < 0 {
		return
	}
	s.notes = slices.Delete(s.notes, idx, idx+1)
	if s.selected == id {
		switch {
		case len(s.notes) == 0:
			s.selected = ""
		case idx > 0:
			s.selected = s.notes[idx-1].ID
		default:
			s.selected = s.notes[0].ID
		}
	}
	s.adapter.Save(s.notes)
}

// Reload re-reads the persisted collection, keeping the in-memory state when
// nothing usable is stored. Used when the notes file changes externally.
// The selection is preserved when the selected note survives the reload.
func (s *Store) Reload() {
	notes, ok := s.adapter.Load()
	if !ok {
		return
	}
	s.notes = notes
	if _, ok := Selected(s.notes, s.selected); !ok {
		s.selected = ""
		if len(s.notes) > 0 {
			s.selected = s.notes[0].ID
		}
	}
}
