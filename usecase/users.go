package usecase

import (
	"context"
	"strings"
	"time"

	"main/dto"
	"main/model"
	"main/services"
	"main/utils"

	"github.com/go-playground/validator/v10"
)

// UserStore is the credential store contract. Lookups return (nil, nil)
// when no user matches.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
}

// UserService implements signup and signin on top of the credential
// store, the password hasher and the token service.
type UserService struct {
	Users    UserStore
	Tokens   *services.TokenService
	validate *validator.Validate
}

func NewUserService(users UserStore, tokens *services.TokenService) *UserService {
	return &UserService{
		Users:    users,
		Tokens:   tokens,
		validate: validator.New(),
	}
}

// Signup validates the input, normalizes email and username to
// lowercase, rejects duplicates, hashes the password and creates the
// account. A session token is issued for the new identity.
//
// Validation order is fixed: email, password, username, fullname —
// the first failure wins.
func (s *UserService) Signup(ctx context.Context, req dto.SignupRequest) (*model.User, string, error) {
	if err := s.validateSignup(req); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(req.Email)
	username := strings.ToLower(req.Username)

	// Conflict checks: username first, then email.
	existing, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		utils.TrackAuthAttempt("failure", "signup")
		return nil, "", utils.ErrConflict
	}

	existing, err = s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		utils.TrackAuthAttempt("failure", "signup")
		return nil, "", utils.ErrConflict
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:        utils.GenerateID(),
		Email:     email,
		Username:  username,
		Password:  hash,
		FullName:  req.Fullname,
		CreatedAt: time.Now(),
	}

	if err := s.Users.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	utils.TrackAuthAttempt("success", "signup")
	return user, token, nil
}

// Signin matches the identifier against username or email, lowercase
// normalized, and verifies the password. Unknown user and wrong
// password collapse to the same generic failure so responses cannot be
// used to enumerate accounts.
func (s *UserService) Signin(ctx context.Context, req dto.SigninRequest) (*model.User, string, error) {
	user, err := s.Users.FindByUsernameOrEmail(ctx, req.UsernameOrEmail)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "signin")
		return nil, "", utils.ErrInvalidCredentials
	}

	if !services.CheckPassword(user.Password, req.Password) {
		utils.TrackAuthAttempt("failure", "signin")
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	utils.TrackAuthAttempt("success", "signin")
	return user, token, nil
}

func (s *UserService) validateSignup(req dto.SignupRequest) error {
	if s.validate.Var(req.Email, "required,email") != nil {
		return utils.NewValidationError("email", "please enter a valid e-mail")
	}
	if len(req.Password) < 5 {
		return utils.NewValidationError("password", "password must have at least 5 characters")
	}
	if len(req.Username) < 3 {
		return utils.NewValidationError("username", "username must have at least 3 characters")
	}
	if len(req.Fullname) < 4 {
		return utils.NewValidationError("fullname", "fullname must have at least 4 characters")
	}
	return nil
}
