package response

import (
	"encoding/json"
	"net/http"

	"hospital-management-api/pkg/apperror"
)

// ErrorBody is the shape of every non-2xx response.
type ErrorBody struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Success writes data as the raw 200 body.
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

func Message(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, MessageBody{Message: message})
}

func Error(w http.ResponseWriter, statusCode int, detail string) {
	JSON(w, statusCode, ErrorBody{Detail: detail})
}

func ValidationError(w http.ResponseWriter, errors map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorBody{
		Detail: "Validation failed",
		Errors: errors,
	})
}

func BadRequest(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "Bad request"
	}
	Error(w, http.StatusBadRequest, detail)
}

func NotFound(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "Resource not found"
	}
	Error(w, http.StatusNotFound, detail)
}

func InternalServerError(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, detail)
}

// FromError writes the response matching an apperror kind. It reports false
// for errors outside the taxonomy, after writing a 500, so the caller can log.
func FromError(w http.ResponseWriter, err error) bool {
	appErr, ok := apperror.As(err)
	if !ok {
		InternalServerError(w, "")
		return false
	}

	switch appErr.Kind {
	case apperror.KindValidation:
		ValidationError(w, appErr.Fields)
	case apperror.KindNotFound:
		NotFound(w, appErr.Message)
	case apperror.KindBadRequest:
		BadRequest(w, appErr.Message)
	default:
		InternalServerError(w, "")
		return false
	}
	return true
}
