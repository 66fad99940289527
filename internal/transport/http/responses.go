package httptransport

import (
	"encoding/json"
	"net/http"

	dErrors "github.com/BartokGyorgy07/webkert-insurance/pkg/domainerrors"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps domain error codes onto HTTP statuses. The code travels in
// the body so callers can distinguish retryable outages from logic errors.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case dErrors.CodeNotAuthenticated:
		status = http.StatusUnauthorized
	case dErrors.CodeNotOwned:
		status = http.StatusForbidden
	case dErrors.CodeNotFound:
		status = http.StatusNotFound
	case dErrors.CodeValidation:
		status = http.StatusBadRequest
	case dErrors.CodeUnavailable:
		status = http.StatusServiceUnavailable
	case dErrors.CodeTimeout:
		status = http.StatusGatewayTimeout
	}
	writeJSON(w, status, errorResponse{Error: string(code), Message: err.Error()})
}
