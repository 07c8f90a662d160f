package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogit/internal/app"
	"blogit/internal/transport/http/middleware"
	"blogit/internal/transport/http/response"
)

type BlogHandler struct {
	blogService *app.BlogService
}

type BlogRequest struct {
	Title            string `json:"title"`
	Synopsis         string `json:"synopsis"`
	Content          string `json:"content"`
	FeaturedImageURL string `json:"featured_image_url"`
}

func NewBlogHandler(blogService *app.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	blog, err := h.blogService.Create(app.CreateBlogInput{
		OwnerID:          userID,
		Title:            req.Title,
		Synopsis:         req.Synopsis,
		Content:          req.Content,
		FeaturedImageURL: req.FeaturedImageURL,
	})
	if err != nil {
		var validationErr *app.ValidationError
		if errors.As(err, &validationErr) {
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, validationErr.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		return
	}

	response.Created(c, blog)
}

func (h *BlogHandler) List(c *gin.Context) {
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

func (h *BlogHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}
	blogID, ok := parseIDParam(c)
	if !ok {
		response.Error(c, http.StatusNotFound, response.CodeBlogNotFound, "blog not found")
		return
	}

	blog, err := h.blogService.Get(userID, blogID)
	if err != nil {
		if errors.Is(err, app.ErrBlogNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeBlogNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		return
	}
	response.OK(c, blog)
}

func (h *BlogHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}
	blogID, ok := parseIDParam(c)
	if !ok {
		response.Error(c, http.StatusNotFound, response.CodeBlogNotFound, "blog not found")
		return
	}

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	blog, err := h.blogService.Update(app.UpdateBlogInput{
		OwnerID:          userID,
		BlogID:           blogID,
		Title:            req.Title,
		Synopsis:         req.Synopsis,
		Content:          req.Content,
		FeaturedImageURL: req.FeaturedImageURL,
	})
	if err != nil {
		if errors.Is(err, app.ErrBlogNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeBlogNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		return
	}
	response.OK(c, blog)
}

func (h *BlogHandler) Trash(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}
	blogID, ok := parseIDParam(c)
	if !ok {
		response.Error(c, http.StatusNotFound, response.CodeBlogNotFound, "blog not found")
		return
	}

	if err := h.blogService.Trash(userID, blogID); err != nil {
		switch {
		case errors.Is(err, app.ErrBlogNotFound):
			response.Error(c, http.StatusNotFound, response.CodeBlogNotFound, err.Error())
		case errors.Is(err, app.ErrAlreadyInTrash):
			response.Error(c, http.StatusBadRequest, response.CodeAlreadyInTrash, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		}
		return
	}
	response.OK(c, gin.H{"message": "blog successfully moved to trash"})
}

func (h *BlogHandler) Recover(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}
	blogID, ok := parseIDParam(c)
	if !ok {
		response.Error(c, http.StatusNotFound, response.CodeBlogNotFound, "blog not found")
		return
	}

	result, err := h.blogService.Recover(userID, blogID)
	if err != nil {
		if errors.Is(err, app.ErrBlogNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeBlogNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		return
	}

	if result.AlreadyRestored {
		response.OK(c, gin.H{"message": "blog already restored", "blog": result.Blog})
		return
	}
	response.OK(c, gin.H{"message": "blog restored successfully", "blog": result.Blog})
}

func (h *BlogHandler) Purge(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized, please login")
		return
	}
	blogID, ok := parseIDParam(c)
	if !ok {
		response.Error(c, http.StatusNotFound, response.CodeBlogNotFound, "blog not found")
		return
	}

	if err := h.blogService.Purge(userID, blogID); err != nil {
		if errors.Is(err, app.ErrBlogNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeBlogNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "something went wrong")
		return
	}
	response.OK(c, gin.H{"message": "blog deleted successfully"})
}

// parseIDParam treats an unparsable id the same as a missing row so the
// error surface never hints at what ids exist.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
