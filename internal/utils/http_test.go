package utils

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-photo-album/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, math.Inf(1), http.StatusOK)

	if err == nil {
		t.Fatal("expected marshal error, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestWriteError_Body(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusUnauthorized, "認証に失敗しました", "auth_error")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.Error != "認証に失敗しました" || body.Kind != "auth_error" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		want    string
	}{
		{name: "valid", body: `{"userId":"u1","title":"旅行"}`, want: "旅行"},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/albums", strings.NewReader(tt.body))

			var got models.CreateAlbumRequest
			err := DecodeJSON(req, &got)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != tt.want {
				t.Errorf("expected title %q, got %q", tt.want, got.Title)
			}
		})
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/albums", strings.NewReader(`{"title":`))

	var got models.CreateAlbumRequest
	if err := DecodeJSON(req, &got); err == nil || errors.Is(err, ErrEmptyBody) {
		t.Fatalf("expected a syntax error, got %v", err)
	}
}
