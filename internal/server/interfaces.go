package server

// Server runs the transport servers enabled by the configuration.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives and every server
// has stopped. Shutdown reports NOT_SERVING on the health service and then
// stops the servers, letting in-flight requests finish.
type Server interface {
	RunServer()
	Shutdown()
}
