package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError translates service-layer sentinel errors into HTTP
// responses. Validation failures carry their field violations in the data
// payload so clients can surface them per field.
func HandleServiceError(c *gin.Context, err error) {
	var vErrs *ValidationErrors
	if errors.As(err, &vErrs) {
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			TraceID: traceIDFrom(c),
			Data:    vErrs.Violations,
		})
		return
	}

	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrAIServiceUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "Sentiment analysis service is not available")
	case errors.Is(err, ErrAIGateway):
		log.Printf("AI gateway error: %v", err)
		RespondError(c, http.StatusBadGateway, "Sentiment analysis request failed")
	case errors.Is(err, ErrSchemaViolation):
		log.Printf("AI schema violation: %v", err)
		RespondError(c, http.StatusBadGateway, "Sentiment analysis returned an invalid response")
	case errors.Is(err, ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusConflict, "Username already taken")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Incorrect username or password")
	case errors.Is(err, ErrInactiveAccount):
		RespondError(c, http.StatusForbidden, "Account is inactive")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Not enough permissions")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
