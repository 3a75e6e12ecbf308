package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the relay transport.
//
// RunServer blocks until ctx is cancelled or serving fails, then releases
// every resource the server holds.
type Server interface {
	// RunServer serves requests until ctx is done.
	RunServer(ctx context.Context) error

	// Addr returns the bound listen address.
	Addr() net.Addr
}
