// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the saved session, keeps the token checked in the background
// and alternates between the login and album pages of the terminal UI until
// the user quits.
package client
