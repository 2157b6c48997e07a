// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-photo-album/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit or until ctx
	// is cancelled.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user signs in or leaves.
	LoginFlow(ctx context.Context) (models.SessionUser, error)
	// MainLoop blocks while the signed in user browses albums. logout
	// reports whether the user asked to sign out.
	MainLoop(ctx context.Context) (logout bool, err error)
}
