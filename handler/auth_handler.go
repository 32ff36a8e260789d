package handler

import (
	"main/config"
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// SignupHandler implements signupUser: create the account, issue a
// session token, set the cookie and return {user, token}.
func SignupHandler(c *gin.Context, userService *usecase.UserService, cfg *config.Config) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	user, token, err := userService.Signup(c.Request.Context(), req)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	utils.SetSessionCookie(c, cfg, token)
	utils.Created(c, dto.AuthResponse{User: user, Token: token})
}

// SigninHandler implements signinUser. A failed lookup and a failed
// password check produce the same response.
func SigninHandler(c *gin.Context, userService *usecase.UserService, cfg *config.Config) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	user, token, err := userService.Signin(c.Request.Context(), req)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	utils.SetSessionCookie(c, cfg, token)
	utils.Success(c, dto.AuthResponse{User: user, Token: token})
}

// SignoutHandler implements signoutUser: clear the cookie and report
// success. The token itself stays valid until expiry, so all signout
// can do is drop the client's copy. Idempotent.
func SignoutHandler(c *gin.Context) {
	utils.ClearSessionCookie(c)
	utils.Success(c, gin.H{"signedOut": true})
}
