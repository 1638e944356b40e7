package server

import "context"

// Server runs the configured transports as one unit.
type Server interface {
	// Run serves until ctx is cancelled or a transport fails, then shuts
	// every transport down. A clean stop returns nil.
	Run(ctx context.Context) error
}
