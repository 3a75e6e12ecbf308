// Package http implements the HTTP transport of the relay.
//
// It wires the three clipboard endpoints (/upload, /fetch, /status) and the
// /version probe onto a chi router. Request tracing, access logging, body
// limits, response compression and CORS are handled here before requests
// reach the service layer.
package http
