package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-photo-album/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var errBody models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errBody); err == nil && errBody.Error != "" {
		return NewResponseError(resp.StatusCode(), errBody.Kind, errBody.Error)
	}
	return NewResponseError(resp.StatusCode(), "", strings.TrimSpace(string(resp.Body())))
}
