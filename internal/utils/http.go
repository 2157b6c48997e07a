package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-photo-album/models"
)

// MaxJSONBodySize caps request bodies read by DecodeJSON.
const MaxJSONBodySize = 1 << 20

// ErrEmptyBody is returned by DecodeJSON for a request without a body.
var ErrEmptyBody = errors.New("request body is empty")

// WriteJSON writes data as a JSON response with statusCode. A value that
// cannot be marshaled turns into a plain 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// DecodeJSON reads at most MaxJSONBodySize bytes of the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	err := json.NewDecoder(io.LimitReader(r.Body, MaxJSONBodySize)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	return err
}

// WriteError writes the uniform {"error": message, "kind": kind} body.
func WriteError(w http.ResponseWriter, statusCode int, message, kind string) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message, Kind: kind}, statusCode)
}
