// Package server wires and runs the application's transport servers.
//
// The HTTP server carries the portal API. When a gRPC address is configured,
// a gRPC server exposes the standard health service next to it. Both stop
// gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
