// Package server runs the HTTP API and the gRPC health endpoint of the
// photo album backend side by side. A stop signal or the failure of either
// transport shuts both down.
package server
