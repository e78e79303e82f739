package handlers

import (
	"net/http"

	"logo-lms/helper"
	"logo-lms/middleware"
	"logo-lms/models"
	"logo-lms/services"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	lessonService services.LessonService
	Helper        *helper.HTTPHelper
}

func NewLessonHandler(lessonService services.LessonService, h *helper.HTTPHelper) *LessonHandler {
	return &LessonHandler{lessonService: lessonService, Helper: h}
}

func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var req models.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	lesson, err := h.lessonService.Create(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lesson)
}

func (h *LessonHandler) GetLesson(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	lesson, err := h.lessonService.Get(c.Request.Context(), middleware.CurrentIdentity(c), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	lesson, err := h.lessonService.Update(c.Request.Context(), middleware.CurrentIdentity(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.lessonService.Delete(c.Request.Context(), middleware.CurrentIdentity(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
