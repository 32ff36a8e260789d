package usecase

import (
	"context"

	"main/dto"
	"main/model"
	"main/utils"
)

// NoteStore is the note store contract. Every method except CreateNote
// and GetUserNotes takes the owner id alongside the note id; a note
// owned by someone else behaves exactly like a missing one.
type NoteStore interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error)
	GetNote(ctx context.Context, noteID, userID string) (*model.Note, error)
	UpdateNote(ctx context.Context, noteID, userID, content, color string) (*model.Note, error)
	DeleteNote(ctx context.Context, noteID, userID string) (*model.Note, error)
}

// NotesService implements the owner-scoped note operations. The caller
// supplies the resolved session identity's user id; the service never
// trusts a user id from the request body.
type NotesService struct {
	Notes NoteStore
}

func NewNotesService(notes NoteStore) *NotesService {
	return &NotesService{Notes: notes}
}

// AllNotes returns every note owned by userID.
func (s *NotesService) AllNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return s.Notes.GetUserNotes(ctx, userID)
}

// SingleNote returns one owned note or ErrNotFound.
func (s *NotesService) SingleNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return s.Notes.GetNote(ctx, noteID, userID)
}

// NewNote creates a note owned by userID. Content is required; a
// missing color falls back to the default, anything else must belong
// to the palette.
func (s *NotesService) NewNote(ctx context.Context, userID string, data dto.NoteData) (*model.Note, error) {
	if data.Content == "" {
		return nil, utils.NewValidationError("content", "content is required")
	}

	color := data.Color
	if color == "" {
		color = model.DefaultNoteColor
	}
	if !model.ValidNoteColor(color) {
		return nil, utils.NewValidationError("color", "color must be one of the palette colors")
	}

	note := &model.Note{
		ID:      utils.GenerateID(),
		Content: data.Content,
		Color:   color,
		IsSaved: true,
		UserID:  userID,
	}

	if err := s.Notes.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// ModifyNote updates the supplied fields of an owned note and returns
// the post-update state. ErrNotFound when no owned note matches.
func (s *NotesService) ModifyNote(ctx context.Context, noteID, userID string, data dto.NoteData) (*model.Note, error) {
	if data.Content == "" && data.Color == "" {
		return nil, utils.NewValidationError("content", "nothing to update")
	}
	if data.Color != "" && !model.ValidNoteColor(data.Color) {
		return nil, utils.NewValidationError("color", "color must be one of the palette colors")
	}

	note, err := s.Notes.UpdateNote(ctx, noteID, userID, data.Content, data.Color)
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("update")
	return note, nil
}

// DeleteNote removes an owned note and returns its prior state.
// ErrNotFound when no owned note matches; a repeat delete of the same
// id therefore also reports ErrNotFound.
func (s *NotesService) DeleteNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := s.Notes.DeleteNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("delete")
	return note, nil
}
