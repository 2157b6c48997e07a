// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransportConfigured is returned by NewHandlers when the server config
// names neither an HTTP nor a gRPC address.
var errNoTransportConfigured = errors.New("neither HTTP nor gRPC address is configured")
