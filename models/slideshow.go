// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Transition is the effect played between two slideshow photos.
type Transition string

const (
	TransitionFade     Transition = "fade"
	TransitionSlide    Transition = "slide"
	TransitionZoom     Transition = "zoom"
	TransitionDissolve Transition = "dissolve"
	TransitionWipe     Transition = "wipe"
)

// Transitions lists every supported transition in display order.
var Transitions = []Transition{
	TransitionFade,
	TransitionSlide,
	TransitionZoom,
	TransitionDissolve,
	TransitionWipe,
}

// Slideshow limits.
const (
	MinSecondsPerPhoto     = 1
	MaxSecondsPerPhoto     = 5
	DefaultSecondsPerPhoto = 3
)

// SlideshowSettings are the per-album slideshow parameters.
type SlideshowSettings struct {
	AlbumID         string     `json:"album_id"`
	Transition      Transition `json:"transition"`
	SecondsPerPhoto int        `json:"seconds_per_photo"`
	Music           string     `json:"music,omitempty"`
	Loop            bool       `json:"loop"`
	Shuffle         bool       `json:"shuffle"`
}

// DefaultSlideshowSettings returns the settings used before the user changes anything.
func DefaultSlideshowSettings(albumID string) SlideshowSettings {
	return SlideshowSettings{
		AlbumID:         albumID,
		Transition:      TransitionFade,
		SecondsPerPhoto: DefaultSecondsPerPhoto,
		Loop:            true,
	}
}

// Validate checks the transition name and the per-photo duration.
func (s SlideshowSettings) Validate() error {
	if s.SecondsPerPhoto < MinSecondsPerPhoto || s.SecondsPerPhoto > MaxSecondsPerPhoto {
		return fmt.Errorf("seconds per photo must be between %d and %d, got %d",
			MinSecondsPerPhoto, MaxSecondsPerPhoto, s.SecondsPerPhoto)
	}
	for _, t := range Transitions {
		if s.Transition == t {
			return nil
		}
	}
	return fmt.Errorf("unknown transition %q", s.Transition)
}

// SlideshowSettingsKey returns the local storage key for the album settings.
func SlideshowSettingsKey(albumID string) string {
	return "slideshow_" + albumID + "_settings"
}
