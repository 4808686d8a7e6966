package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"
)

// bindRequest decodes, normalizes and validates the request body. It writes
// the error response itself and reports false when the request is rejected.
func bindRequest[R any](w http.ResponseWriter, r *http.Request, v *validator.CustomValidator) (*R, bool) {
	req := new(R)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return nil, false
	}

	if n, ok := any(req).(dto.Normalizer); ok {
		n.Normalize()
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return nil, false
	}
	return req, true
}
