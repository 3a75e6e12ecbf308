// Package server runs the relay's HTTP transport.
//
// It binds the listener up front so the chosen port is known before serving,
// optionally advertises the relay over mDNS and shuts down gracefully when the
// run context is cancelled.
package server
