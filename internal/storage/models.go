package storage

// NoteEntry is a stored note. ID is the 1-based insertion position and is
// never reused.
type NoteEntry struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}
