package dto

// NoteData is the payload of newNote and modifyNote. On modify, an
// empty field means "leave unchanged".
type NoteData struct {
	Content string `json:"content"`
	Color   string `json:"color"`
}
