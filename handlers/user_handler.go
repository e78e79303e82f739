package handlers

import (
	"io"
	"net/http"
	"strings"

	"logo-lms/helper"
	"logo-lms/middleware"
	"logo-lms/models"
	"logo-lms/services"

	"github.com/gin-gonic/gin"
)

const maxAvatarBytes = 5 << 20

var avatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListOwn(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), middleware.CurrentIdentity(c), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), middleware.CurrentIdentity(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarBytes+1024)
	file, err := c.FormFile("avatar")
	if err != nil {
		h.Helper.SendBadRequest(c, "avatar file is required", h.Helper.EmptyJsonMap())
		return
	}
	if file.Size > maxAvatarBytes {
		h.Helper.SendBadRequest(c, "avatar must not exceed 5MB", h.Helper.EmptyJsonMap())
		return
	}
	contentType := strings.ToLower(file.Header.Get("Content-Type"))
	if !avatarTypes[contentType] {
		h.Helper.SendBadRequest(c, "avatar must be a jpeg, png, gif or webp image", h.Helper.EmptyJsonMap())
		return
	}

	f, err := file.Open()
	if err != nil {
		h.Helper.SendBadRequest(c, "avatar file is unreadable", h.Helper.EmptyJsonMap())
		return
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		h.Helper.SendBadRequest(c, "avatar file is unreadable", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userService.UploadAvatar(c.Request.Context(), middleware.CurrentIdentity(c), id, file.Filename, contentType, body)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
