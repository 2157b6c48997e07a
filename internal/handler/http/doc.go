// Package http implements the HTTP transport layer of the photo album server.
//
// It exposes route wiring, request handlers and middleware for the REST API.
// Tracing, access logging, panic recovery, CORS, response compression and
// the optional bearer authentication of the album endpoints are handled
// here before requests are delegated to the service layer.
package http
