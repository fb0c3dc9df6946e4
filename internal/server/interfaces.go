package server

// Server defines the lifecycle contract of the gateway's transport servers.
//
// RunServer blocks until a termination signal arrives, then drains every
// enabled transport. Shutdown stops them immediately from another goroutine.
type Server interface {
	RunServer()
	Shutdown()
}
