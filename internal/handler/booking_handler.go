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

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service service.BookingServicer
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service service.BookingServicer) *BookingHandler {
	return &BookingHandler{service: service}
}

// CreateBooking godoc
// @Summary      Book seats on a train
// @Description  Reserve seats; the total price is computed from the train's price
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateBookingRequest  true  "Booking details"
// @Success      200      {object}  response.Response{data=models.Booking}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Translate(err))
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTrainNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotEnoughSeats):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, booking)
}

// ListMyBookings godoc
// @Summary      List own bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Booking}
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	bookings, err := h.service.ListMyBookings(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, bookings)
}

// GetBooking godoc
// @Summary      Get booking by ID
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  response.Response{data=models.Booking}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.service.GetBooking(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, booking)
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Description  Mark a confirmed booking cancelled, releasing its seats
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  response.Response{data=models.Booking}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id}/cancel [put]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	booking, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingCancelled) {
			response.BadRequest(c, err.Error())
			return
		}
		h.renderError(c, err)
		return
	}

	response.Success(c, booking)
}

// DeleteBooking godoc
// @Summary      Delete a booking
// @Description  Removing an already-absent booking still reports success
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.service.DeleteBooking(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "booking deleted"})
}

// renderError maps common booking errors onto response codes.
func (h *BookingHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrBookingNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrBookingUnauthorized):
		response.Forbidden(c, err.Error())
	default:
		response.InternalError(c)
	}
}
