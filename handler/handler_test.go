package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"main/config"
	"main/middleware"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// In-memory stores mirroring the repository contracts, so handler tests
// run the full middleware + handler stack without a live MongoDB.

type memUserStore struct {
	users []*model.User
}

func (s *memUserStore) CreateUser(_ context.Context, user *model.User) error {
	copied := *user
	s.users = append(s.users, &copied)
	return nil
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) FindByUsernameOrEmail(_ context.Context, usernameOrEmail string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == usernameOrEmail || u.Email == usernameOrEmail {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) FindByID(_ context.Context, userID string) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, nil
}

type memNoteStore struct {
	notes map[string]*model.Note
}

func newMemNoteStore() *memNoteStore {
	return &memNoteStore{notes: map[string]*model.Note{}}
}

func (s *memNoteStore) CreateNote(_ context.Context, note *model.Note) error {
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	copied := *note
	s.notes[note.ID] = &copied
	return nil
}

func (s *memNoteStore) GetUserNotes(_ context.Context, userID string) ([]*model.Note, error) {
	result := []*model.Note{}
	for _, n := range s.notes {
		if n.UserID == userID {
			copied := *n
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *memNoteStore) GetNote(_ context.Context, noteID, userID string) (*model.Note, error) {
	n, ok := s.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, utils.ErrNotFound
	}
	copied := *n
	return &copied, nil
}

func (s *memNoteStore) UpdateNote(_ context.Context, noteID, userID, content, color string) (*model.Note, error) {
	n, ok := s.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, utils.ErrNotFound
	}
	if content != "" {
		n.Content = content
	}
	if color != "" {
		n.Color = color
	}
	n.UpdatedAt = time.Now()
	copied := *n
	return &copied, nil
}

func (s *memNoteStore) DeleteNote(_ context.Context, noteID, userID string) (*model.Note, error) {
	n, ok := s.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, utils.ErrNotFound
	}
	delete(s.notes, noteID)
	return n, nil
}

type testApp struct {
	router *gin.Engine
	tokens *services.TokenService
	cfg    *config.Config
}

// newTestApp wires the same middleware chain and routes as main, on top
// of in-memory stores.
func newTestApp() *testApp {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:      "test_secret_key",
		TokenTTL:       24 * time.Hour,
		CookieSameSite: http.SameSiteStrictMode,
		CookieSecure:   true,
	}

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := usecase.NewUserService(&memUserStore{}, tokens)
	notesService := usecase.NewNotesService(newMemNoteStore())

	r := gin.New()
	r.Use(middleware.SessionMiddleware(tokens))

	auth := r.Group("/api/auth")
	auth.POST("/signup", func(c *gin.Context) { SignupHandler(c, userService, cfg) })
	auth.POST("/signin", func(c *gin.Context) { SigninHandler(c, userService, cfg) })
	auth.POST("/signout", SignoutHandler)

	notes := r.Group("/api/notes")
	notes.Use(middleware.AuthMiddleware())
	notes.GET("", func(c *gin.Context) { AllNotesHandler(c, notesService) })
	notes.GET("/:id", func(c *gin.Context) { SingleNoteHandler(c, notesService) })
	notes.POST("", func(c *gin.Context) { NewNoteHandler(c, notesService) })
	notes.PUT("/:id", func(c *gin.Context) { ModifyNoteHandler(c, notesService) })
	notes.DELETE("/:id", func(c *gin.Context) { DeleteNoteHandler(c, notesService) })

	return &testApp{router: r, tokens: tokens, cfg: cfg}
}

// do performs a JSON request, optionally with a session cookie.
func (a *testApp) do(method, path, body, sessionToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: sessionToken})
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// sessionTokenFor issues a valid token directly, bypassing signup.
func (a *testApp) sessionTokenFor(userID, username string) string {
	token, _ := a.tokens.Issue(userID, username)
	return token
}
