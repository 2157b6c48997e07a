// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-album/internal/adapter"
	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var respErr *adapter.ResponseError
	if !errors.As(err, &respErr) {
		return err
	}

	var mapped error
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch respErr.Message {
		case app.MsgUserIDRequired:
			mapped = ErrValidationNoUserID
		case app.MsgUserIDAndTitleRequired:
			mapped = ErrValidationNoTitle
		case app.MsgUserInfoMissing:
			mapped = ErrValidationNoProfile
		default:
			mapped = ErrValidationInvalidAlbum
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		mapped = ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		if respErr.Message == app.MsgUserInactive {
			mapped = ErrUserInactive
		} else {
			mapped = ErrForeignAlbum
		}

	case errors.Is(err, adapter.ErrNotFound):
		if respErr.Message == app.MsgAlbumNotFound {
			mapped = store.ErrAlbumNotFound
		}
	}

	if mapped == nil {
		return err
	}
	return fmt.Errorf("%w: %w", mapped, err)
}
