package server

// Server is the lifecycle contract for the job board's API server.
//
// Implementations block in [RunServer] until a shutdown signal arrives and
// release the listener and in-flight requests in [Shutdown].
type Server interface {
	// RunServer starts serving API requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
