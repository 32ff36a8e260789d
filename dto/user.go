package dto

import "main/model"

type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

type SigninRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// AuthResponse is returned by both signup and signin. The token is also
// set as the session cookie; returning it in the body keeps non-browser
// clients working.
type AuthResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}
