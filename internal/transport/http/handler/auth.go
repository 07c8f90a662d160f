package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blogit/internal/app"
	"blogit/internal/transport/http/middleware"
	"blogit/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
	cookieName  string
	cookieTTL   time.Duration
}

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type ChangePasswordRequest struct {
	PreviousPassword string `json:"previous_password"`
	NewPassword      string `json:"new_password"`
}

func NewAuthHandler(authService *app.AuthService, cookieName string, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieName:  cookieName,
		cookieTTL:   cookieTTL,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := h.authService.Register(app.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		var validationErr *app.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, validationErr.Error())
		case errors.Is(err, app.ErrEmailExists):
			response.Error(c, http.StatusBadRequest, response.CodeEmailExists, err.Error())
		case errors.Is(err, app.ErrUsernameExists):
			response.Error(c, http.StatusBadRequest, response.CodeUsernameExists, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		}
		return
	}

	response.Created(c, gin.H{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"username":   user.Username,
		"email":      user.Email,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	result, err := h.authService.Login(app.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "identifier and password are required")
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusUnauthorized, response.CodeInvalidCredentials, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		}
		return
	}

	c.SetCookie(h.cookieName, result.Token, int(h.cookieTTL.Seconds()), "/", "", false, true)
	response.OK(c, gin.H{
		"token": result.Token,
		"user": gin.H{
			"id":         result.User.ID,
			"first_name": result.User.FirstName,
			"last_name":  result.User.LastName,
			"username":   result.User.Username,
			"email":      result.User.Email,
		},
	})
}

// Logout only instructs the client to discard the credential. The token
// itself stays valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	response.OK(c, gin.H{"message": "logged out successfully"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	err := h.authService.ChangePassword(userID, req.PreviousPassword, req.NewPassword)
	if err != nil {
		var validationErr *app.ValidationError
		switch {
		case errors.Is(err, app.ErrWrongPassword):
			response.Error(c, http.StatusBadRequest, response.CodeWrongPassword, err.Error())
		case errors.As(err, &validationErr):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, validationErr.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "previous password is required")
		case errors.Is(err, app.ErrProfileNotFound):
			response.Error(c, http.StatusNotFound, response.CodeProfileNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		}
		return
	}

	response.OK(c, gin.H{"message": "password updated successfully"})
}
