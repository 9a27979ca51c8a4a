package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// serviceErrors maps sentinel errors to the status and message shown to clients.
var serviceErrors = []struct {
	err     error
	code    int
	message string
}{
	{ErrInvalidInput, http.StatusBadRequest, "Invalid input"},
	{ErrInvalidDateRange, http.StatusBadRequest, "End date must not be before start date"},
	{ErrTripTooLong, http.StatusBadRequest, "Trip is too long"},
	{ErrUnknownCategory, http.StatusBadRequest, "Unknown preference category"},
	{ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
	{ErrInvalidPageSize, http.StatusBadRequest, "Page size must be between 1 and 100"},
	{ErrNoCandidates, http.StatusUnprocessableEntity, "No attractions found for this destination, try another destination or fewer preferences"},
	{ErrPOINotFound, http.StatusNotFound, "POI not found"},
	{ErrJourneyNotFound, http.StatusNotFound, "Journey not found"},
	{ErrDayNotFound, http.StatusNotFound, "Journey day not found"},
	{ErrAccountNotFound, http.StatusNotFound, "Account not found"},
	{ErrForbidden, http.StatusForbidden, "Forbidden"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
	{ErrSuggestionFailed, http.StatusBadGateway, "Attraction search is unavailable, please retry"},
}

func HandleServiceError(c *gin.Context, err error) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			if se.code >= http.StatusInternalServerError {
				log.WithField("trace_id", c.GetString("trace_id")).Errorf("service error: %v", err)
			}
			RespondError(c, se.code, se.message)
			return
		}
	}

	log.WithField("trace_id", c.GetString("trace_id")).Errorf("unhandled service error: %v", err)
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
