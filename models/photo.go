// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"cmp"
	"slices"
	"sort"
	"time"
)

// Photo is a single image inside an album.
//
// Server-backed photos carry FilePath; photos uploaded into local storage
// carry an inline data URI in URL. UploadedAt is set only for photos uploaded
// by the user, which are the ones written back to local storage.
type Photo struct {
	ID           string     `json:"id"`
	AlbumID      string     `json:"album_id,omitempty"`
	FilePath     string     `json:"file_path,omitempty"`
	URL          string     `json:"url,omitempty"`
	Filename     string     `json:"filename"`
	FileSize     int64      `json:"file_size,omitempty"`
	MimeType     string     `json:"mime_type,omitempty"`
	Width        int        `json:"width,omitempty"`
	Height       int        `json:"height,omitempty"`
	DisplayOrder int        `json:"display_order"`
	UploadedAt   *time.Time `json:"uploadedAt,omitempty"`
}

// TableName returns the name of the database table
// associated with the Photo model.
func (p Photo) TableName() string {
	return "photos"
}

// Source returns the path or inline data URI used to render the photo.
func (p Photo) Source() string {
	if p.URL != "" {
		return p.URL
	}
	return p.FilePath
}

// IsUploaded reports whether the photo was uploaded by the user.
func (p Photo) IsUploaded() bool {
	return p.UploadedAt != nil
}

// SortPhotos orders photos by DisplayOrder. Ties keep their slice position,
// so gaps and duplicate orders are tolerated.
func SortPhotos(photos []Photo) {
	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].DisplayOrder < photos[j].DisplayOrder
	})
}

// UploadedOnly returns the photos that carry an upload timestamp.
func UploadedOnly(photos []Photo) []Photo {
	uploaded := make([]Photo, 0, len(photos))
	for _, p := range photos {
		if p.IsUploaded() {
			uploaded = append(uploaded, p)
		}
	}
	return uploaded
}

// MergePhotos returns baseline followed by the stored photos that are not
// already part of it. Photos are matched by ID.
func MergePhotos(baseline, stored []Photo) []Photo {
	seen := make(map[string]struct{}, len(baseline))
	merged := make([]Photo, 0, len(baseline)+len(stored))
	for _, p := range baseline {
		seen[p.ID] = struct{}{}
		merged = append(merged, p)
	}
	for _, p := range stored {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		merged = append(merged, p)
	}
	return merged
}

// ApplyOrder arranges photos by the IDs in order and renumbers DisplayOrder
// from 1. Photos missing from order keep their relative position after the
// ordered ones; IDs that match no photo are ignored.
func ApplyOrder(photos []Photo, order []string) []Photo {
	rank := make(map[string]int, len(order))
	for i, id := range order {
		if _, dup := rank[id]; !dup {
			rank[id] = i
		}
	}

	ordered := slices.Clone(photos)
	slices.SortStableFunc(ordered, func(a, b Photo) int {
		ra, okA := rank[a.ID]
		rb, okB := rank[b.ID]
		switch {
		case okA && okB:
			return cmp.Compare(ra, rb)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
	for i := range ordered {
		ordered[i].DisplayOrder = i + 1
	}
	return ordered
}

// PhotoIDs returns the IDs of photos in slice order.
func PhotoIDs(photos []Photo) []string {
	ids := make([]string, len(photos))
	for i, p := range photos {
		ids[i] = p.ID
	}
	return ids
}
