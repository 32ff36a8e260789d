package handler

import (
	"main/dto"
	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// AllNotesHandler implements allNotes: every note owned by the session
// identity.
func AllNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	notes, err := notesService.AllNotes(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, notes)
}

// SingleNoteHandler implements singleNote. A note owned by another
// user is reported as not found.
func SingleNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	note, err := notesService.SingleNote(c.Request.Context(), c.Param("id"), middleware.Identity(c))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, note)
}

// NewNoteHandler implements newNote.
func NewNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var data dto.NoteData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	note, err := notesService.NewNote(c.Request.Context(), middleware.Identity(c), data)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Created(c, note)
}

// ModifyNoteHandler implements modifyNote and returns the post-update
// note.
func ModifyNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var data dto.NoteData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	note, err := notesService.ModifyNote(c.Request.Context(), c.Param("id"), middleware.Identity(c), data)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, note)
}

// DeleteNoteHandler implements deleteNote and returns the deleted
// note's prior state.
func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	note, err := notesService.DeleteNote(c.Request.Context(), c.Param("id"), middleware.Identity(c))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, note)
}
