package handlers

import (
	"net/http"

	"logo-lms/helper"
	"logo-lms/middleware"
	"logo-lms/models"
	"logo-lms/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService services.ReviewService
	Helper        *helper.HTTPHelper
}

func NewReviewHandler(reviewService services.ReviewService, h *helper.HTTPHelper) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, Helper: h}
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	var params models.ReviewListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	reviews, err := h.reviewService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.Get(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), middleware.CurrentIdentity(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), middleware.CurrentIdentity(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), middleware.CurrentIdentity(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
