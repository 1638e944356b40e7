// Package server runs the HTTP front end and the gRPC health endpoint side by
// side and stops both when the run context ends or either one fails.
package server
