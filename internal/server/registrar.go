package server

import "google.golang.org/grpc"

// Registrar attaches one gRPC service implementation to a server.
// Services keep their dependencies; the server only knows this interface.
type Registrar interface {
	Register(s *grpc.Server)
}
