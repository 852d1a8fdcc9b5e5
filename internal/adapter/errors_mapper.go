package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-catalog-admin/internal/utils"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		kind:       statusErrors[resp.StatusCode()],
	}

	var body utils.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Field = body.Field
	} else if text := strings.TrimSpace(string(resp.Body())); text != "" {
		apiErr.Message = text
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	return apiErr
}
