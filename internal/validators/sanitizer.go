// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"html"
	"strings"

	"github.com/MKhiriev/go-photo-album/models"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips every HTML element from user supplied album text.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text removes markup from s and trims the result. Entities escaped by the
// policy are decoded back, so "&" stays "&".
func (s *Sanitizer) Text(in string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(in)))
}

// CreateAlbumRequest returns a copy of req with title and description
// sanitized. An empty description becomes nil.
func (s *Sanitizer) CreateAlbumRequest(req models.CreateAlbumRequest) models.CreateAlbumRequest {
	req.UserID = strings.TrimSpace(req.UserID)
	req.Title = s.Text(req.Title)

	if req.Description != nil {
		desc := s.Text(*req.Description)
		if desc == "" {
			req.Description = nil
		} else {
			req.Description = &desc
		}
	}
	if req.ThumbnailURL != nil {
		thumb := strings.TrimSpace(*req.ThumbnailURL)
		if thumb == "" {
			req.ThumbnailURL = nil
		} else {
			req.ThumbnailURL = &thumb
		}
	}

	return req
}
