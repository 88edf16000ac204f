package server

// Server is the lifecycle contract for transport servers. RunServer blocks
// until the server stops; Shutdown drains in-flight requests and releases
// resources.
type Server interface {
	RunServer()
	Shutdown()
}
