package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-session-auth/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses and an *APIError otherwise.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: status, kind: ErrUnexpectedStatus}
	if kind, ok := statusErrors[status]; ok {
		apiErr.kind = kind
	}

	var body models.ValidationErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Details = body.Details
	} else {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}
