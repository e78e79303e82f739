package handlers

import (
	"net/http"

	"logo-lms/helper"
	"logo-lms/middleware"
	"logo-lms/models"
	"logo-lms/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService services.FavoriteService
	Helper          *helper.HTTPHelper
}

func NewFavoriteHandler(favoriteService services.FavoriteService, h *helper.HTTPHelper) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService, Helper: h}
}

func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	favorites, err := h.favoriteService.List(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	favorite, err := h.favoriteService.Add(c.Request.Context(), middleware.CurrentIdentity(c), req.CourseID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	courseID, ok := h.Helper.ParseID(c, "course_id")
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), middleware.CurrentIdentity(c), courseID); err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
