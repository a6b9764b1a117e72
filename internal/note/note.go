// Package note holds the authoritative note collection and its derived views.
package note

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// DefaultTitle is substituted when a note is saved with a blank title.
const DefaultTitle = "Untitled"

// Note is the persisted unit of user content.
type Note struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	LastEdited int64  `json:"lastEdited"` // epoch milliseconds
}

// EditedAt returns the last-edited timestamp as a time.Time.
func (n Note) EditedAt() time.Time {
	return time.UnixMilli(n.LastEdited)
}

// NewID creates a new note ID with "nt-" prefix and 16 hex chars.
func NewID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand does not fail on supported platforms; keep a
		// deterministic fallback anyway.
		return "nt-" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return "nt-" + hex.EncodeToString(b)
}

// NormalizeTitle trims a title and substitutes DefaultTitle when blank.
func NormalizeTitle(title string) string {
	t := strings.TrimSpace(title)
	if t == "" {
		return DefaultTitle
	}
	return t
}

// IsBlank reports whether content is empty after trimming whitespace.
func IsBlank(content string) bool {
	return strings.TrimSpace(content) == ""
}
