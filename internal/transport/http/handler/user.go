package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogit/internal/app"
	"blogit/internal/transport/http/middleware"
	"blogit/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
	blogService *app.BlogService
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

func NewUserHandler(userService *app.UserService, blogService *app.BlogService) *UserHandler {
	return &UserHandler{
		userService: userService,
		blogService: blogService,
	}
}

func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}

	user, err := h.userService.Profile(userID)
	if err != nil {
		if errors.Is(err, app.ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeProfileNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		return
	}

	response.OK(c, gin.H{
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"username":     user.Username,
		"email":        user.Email,
		"date_joined":  user.CreatedAt,
		"last_updated": user.UpdatedAt,
	})
}

// UpdateProfile accepts the path id for route compatibility but the token
// identity is authoritative; a mismatching id behaves as not found.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}
	pathID, ok := parseIDParam(c)
	if !ok || pathID != userID {
		response.Error(c, http.StatusNotFound, response.CodeProfileNotFound, "profile not found")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	user, err := h.userService.UpdateProfile(app.UpdateProfileInput{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, app.ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeProfileNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		return
	}

	response.OK(c, gin.H{"message": "profile updated successfully", "user": user})
}

func (h *UserHandler) Blogs(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}

	blogs, err := h.blogService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		return
	}
	response.OK(c, blogs)
}

func (h *UserHandler) TrashedBlogs(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}

	blogs, err := h.blogService.ListTrashed(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		return
	}
	response.OK(c, blogs)
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}

	if err := h.userService.DeleteAccount(userID); err != nil {
		if errors.Is(err, app.ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeProfileNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		return
	}
	response.OK(c, gin.H{"message": "account deleted successfully"})
}
