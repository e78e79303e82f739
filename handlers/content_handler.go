package handlers

import (
	"net/http"

	"logo-lms/helper"
	"logo-lms/services"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the public read-only pages and the category list.
type ContentHandler struct {
	contentService  services.ContentService
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewContentHandler(contentService services.ContentService, categoryService services.CategoryService, h *helper.HTTPHelper) *ContentHandler {
	return &ContentHandler{contentService: contentService, categoryService: categoryService, Helper: h}
}

func (h *ContentHandler) GetHome(c *gin.Context) {
	page, err := h.contentService.Home(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ContentHandler) GetWhyCourse(c *gin.Context) {
	page, err := h.contentService.WhyCourse(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ContentHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
