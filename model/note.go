package model

import "time"

// DefaultNoteColor is applied when a note is created without a color.
const DefaultNoteColor = "yellow"

// NoteColors is the fixed palette a note color must come from.
var NoteColors = []string{"yellow", "green", "pink", "purple", "blue", "gray", "charcoal"}

// ValidNoteColor reports whether color belongs to the palette.
func ValidNoteColor(color string) bool {
	for _, c := range NoteColors {
		if c == color {
			return true
		}
	}
	return false
}

// Note belongs to exactly one user. The owner is set at creation and
// never changes; every lookup, update and delete filters on it.
type Note struct {
	ID        string    `bson:"_id" json:"id"`
	Content   string    `bson:"content" json:"content"`
	Color     string    `bson:"color" json:"color"`
	IsSaved   bool      `bson:"is_saved" json:"isSaved"`
	UserID    string    `bson:"user_id" json:"userId"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
