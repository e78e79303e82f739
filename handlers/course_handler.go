package handlers

import (
	"net/http"

	"logo-lms/helper"
	"logo-lms/middleware"
	"logo-lms/models"
	"logo-lms/services"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseService   services.CourseService
	purchaseService services.PurchaseService
	Helper          *helper.HTTPHelper
}

func NewCourseHandler(courseService services.CourseService, purchaseService services.PurchaseService, h *helper.HTTPHelper) *CourseHandler {
	return &CourseHandler{courseService: courseService, purchaseService: purchaseService, Helper: h}
}

func (h *CourseHandler) GetCourses(c *gin.Context) {
	var params models.CourseListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	courses, total, err := h.courseService.List(c.Request.Context(), middleware.CurrentIdentity(c), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendPaged(c, courses, params.Limit, params.Page, int(total))
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.Detail(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req models.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) GetOwnCourse(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.Get(c.Request.Context(), middleware.CurrentIdentity(c), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), middleware.CurrentIdentity(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), middleware.CurrentIdentity(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CourseHandler) BuyCourse(c *gin.Context) {
	var req models.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	purchase, err := h.purchaseService.Buy(c.Request.Context(), middleware.CurrentIdentity(c), req.CourseID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, purchase)
}
