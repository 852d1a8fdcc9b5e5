package server

// Server runs the catalog admin HTTP API.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then drains
	// in-flight requests. It returns an error only when serving failed.
	RunServer() error

	// Shutdown stops accepting requests and waits for active ones.
	Shutdown()
}
