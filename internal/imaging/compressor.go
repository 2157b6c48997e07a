// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package imaging shrinks uploaded pictures before they are stored locally.
// Every output is a JPEG data URI whose longest side does not exceed the
// requested bound.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"math"

	"github.com/nfnt/resize"
)

const (
	// DefaultMaxDimension is the longest side of a stored photo.
	DefaultMaxDimension = 1920
	// DefaultQuality is the JPEG quality used by the upload flow.
	DefaultQuality = 0.8

	// MimeType is the type of every compressed image.
	MimeType = "image/jpeg"

	dataURIPrefix = "data:" + MimeType + ";base64,"
)

// Image is the result of a compression.
type Image struct {
	// DataURI is the base64 JPEG ready to be stored as a photo URL.
	DataURI string
	Width   int
	Height  int
	// Size is the length of the encoded JPEG in bytes.
	Size int64
}

// Compressor resizes and re-encodes images.
type Compressor struct {
	interp resize.InterpolationFunction
}

// NewCompressor returns a Compressor using Lanczos resampling.
func NewCompressor() *Compressor {
	return &Compressor{interp: resize.Lanczos3}
}

// Compress decodes r, scales it so that its longest side is at most
// maxDimension and encodes it as JPEG with the given quality.
//
// A non-positive maxDimension falls back to DefaultMaxDimension.
func (c *Compressor) Compress(ctx context.Context, r io.Reader, maxDimension int, quality float64) (Image, error) {
	jpegQuality, err := JPEGQuality(quality)
	if err != nil {
		return Image{}, err
	}
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}

	if err := ctx.Err(); err != nil {
		return Image{}, err
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := src.Bounds()
	width, height := Dimensions(bounds.Dx(), bounds.Dy(), maxDimension)

	dst := src
	if width != bounds.Dx() || height != bounds.Dy() {
		dst = resize.Resize(uint(width), uint(height), src, c.interp)
	}

	if err := ctx.Err(); err != nil {
		return Image{}, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Image{}, fmt.Errorf("encode jpeg: %w", err)
	}

	return Image{
		DataURI: dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:   width,
		Height:  height,
		Size:    int64(buf.Len()),
	}, nil
}

// Dimensions returns the output size for a w x h image bounded by bound.
// Images that already fit are left unchanged. Otherwise the longer side
// becomes exactly bound and the shorter one is scaled by the same factor,
// rounded to the nearest pixel and never below 1.
func Dimensions(w, h, bound int) (int, int) {
	longest := max(w, h)
	if longest <= bound || longest == 0 {
		return w, h
	}

	scale := float64(bound) / float64(longest)
	scaled := func(v int) int {
		return max(1, int(math.Round(float64(v)*scale)))
	}

	if w >= h {
		return bound, scaled(h)
	}
	return scaled(w), bound
}

// JPEGQuality maps a quality in [0, 1] onto the encoder's 1..100 scale.
func JPEGQuality(q float64) (int, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, ErrInvalidQuality
	}
	return min(100, max(1, int(math.Round(q*100)))), nil
}
