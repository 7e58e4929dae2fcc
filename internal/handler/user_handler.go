package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "travely/internal/errors"
	"travely/internal/middleware"
	"travely/internal/models"
	"travely/internal/service"
	"travely/internal/validator"
	"travely/pkg/response"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// GetUser godoc
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, user)
}

// GetAllUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.User}
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, users)
}

// UpdateUser godoc
// @Summary      Update user profile
// @Description  Replace editable profile fields; optional profile image upload
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        id          path      string  true   "User ID"
// @Param        name        formData  string  true   "Display name"
// @Param        mobile      formData  string  true   "Mobile number (10 digits)"
// @Param        country     formData  string  true   "Country"
// @Param        type        formData  string  true   "Account type"
// @Param        profileImg  formData  file    false  "Profile image (jpg, jpeg or png)"
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if !middleware.IsAdmin(c) && middleware.GetUserID(c) != id {
		response.Forbidden(c, "cannot modify another user's profile")
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, validator.Translate(err))
		return
	}

	image, err := formImage(c, "profileImg")
	if err != nil {
		response.BadRequest(c, "invalid image upload")
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, &req, image)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrUnsupportedImageType):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, user)
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Removing an already-absent user still reports success
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "user deleted"})
}
