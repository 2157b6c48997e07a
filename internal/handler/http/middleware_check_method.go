// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/utils"
)

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler. A path served only for other methods answers 404 like an unknown
// path, so route existence is not leaked through 405 responses.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, app.MsgNotFound, app.KindNotFound)
}
