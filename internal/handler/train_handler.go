// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "travely/internal/errors"
	"travely/internal/models"
	"travely/internal/service"
	"travely/internal/validator"
	"travely/pkg/response"
)

// TrainHandler handles HTTP requests for train operations.
type TrainHandler struct {
	service service.TrainServicer
}

// NewTrainHandler creates a new TrainHandler.
func NewTrainHandler(service service.TrainServicer) *TrainHandler {
	return &TrainHandler{service: service}
}

// formImage reads an optional file slot. An absent file yields nil with no
// error; a present-but-broken part is reported to the caller.
func formImage(c *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return fh, nil
}

// CreateTrain godoc
// @Summary      Add a train
// @Description  Create a train from a multipart form with an optional main image
// @Tags         trains
// @Accept       multipart/form-data
// @Produce      json
// @Param        trainName     formData  string  true   "Train name"
// @Param        from          formData  string  true   "Origin station"
// @Param        to            formData  string  true   "Destination station"
// @Param        arrivalTime   formData  string  true   "Arrival time (HH:MM)"
// @Param        departureTime formData  string  true   "Departure time (HH:MM)"
// @Param        date          formData  string  true   "Running date (YYYY-MM-DD)"
// @Param        price         formData  number  true   "Ticket price"
// @Param        noOfSeats     formData  integer true   "Seat count (1-100)"
// @Param        description   formData  string  true   "Description"
// @Param        MaxBagage     formData  integer true   "Baggage allowance in kg"
// @Param        classType     formData  string  true   "economy, business or first"
// @Param        cancelCharges formData  string  false  "Cancellation policy"
// @Param        trainMainImg  formData  file    false  "Main image (jpg, jpeg or png)"
// @Success      200  {object}  response.Response{data=models.Train}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /trains [post]
func (h *TrainHandler) CreateTrain(c *gin.Context) {
	var req models.CreateTrainRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, validator.Translate(err))
		return
	}

	image, err := formImage(c, "trainMainImg")
	if err != nil {
		response.BadRequest(c, "invalid image upload")
		return
	}

	train, err := h.service.CreateTrain(c.Request.Context(), &req, image)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedImageType) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, train)
}

// GetTrain godoc
// @Summary      Get train by ID
// @Tags         trains
// @Produce      json
// @Param        id   path      string  true  "Train ID"
// @Success      200  {object}  response.Response{data=models.Train}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /trains/{id} [get]
func (h *TrainHandler) GetTrain(c *gin.Context) {
	train, err := h.service.GetTrain(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTrainNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, train)
}

// GetAllTrains godoc
// @Summary      List all trains
// @Tags         trains
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Train}
// @Failure      500  {object}  response.Response
// @Router       /trains [get]
func (h *TrainHandler) GetAllTrains(c *gin.Context) {
	trains, err := h.service.GetAllTrains(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, trains)
}

// SearchTrains godoc
// @Summary      Search trains by route
// @Description  List trains running between two stations; no match yields an empty list
// @Tags         trains
// @Produce      json
// @Param        from  path      string  true  "Origin station"
// @Param        to    path      string  true  "Destination station"
// @Success      200   {object}  response.Response{data=[]models.Train}
// @Failure      500   {object}  response.Response
// @Router       /trains/search/{from}/{to} [get]
func (h *TrainHandler) SearchTrains(c *gin.Context) {
	trains, err := h.service.SearchTrains(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, trains)
}

// UpdateTrain godoc
// @Summary      Update a train
// @Description  Full-record replace; every field is re-validated
// @Tags         trains
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Train ID"
// @Param        request  body      models.UpdateTrainRequest true  "Replacement record"
// @Success      200      {object}  response.Response{data=models.UpdateTrainResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /trains/{id} [put]
func (h *TrainHandler) UpdateTrain(c *gin.Context) {
	var req models.UpdateTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Translate(err))
		return
	}

	train, err := h.service.UpdateTrain(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTrainNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, models.UpdateTrainResponse{Status: "Updated", Train: *train})
}

// DeleteTrain godoc
// @Summary      Delete a train
// @Description  Removing an already-absent train still reports success
// @Tags         trains
// @Produce      json
// @Param        id   path      string  true  "Train ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /trains/{id} [delete]
func (h *TrainHandler) DeleteTrain(c *gin.Context) {
	if err := h.service.DeleteTrain(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrTrainNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "train deleted"})
}
