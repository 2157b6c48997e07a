// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoTransports means neither an HTTP nor a gRPC address was configured.
var errNoTransports = errors.New("no HTTP or gRPC transport configured")
