package httpapi

import "github.com/hashicorp/go-hclog"

// Option configures a Server at construction time.
type Option func(*Server)

// WithLogger sets the logging instance used by the server and the
// event stream it mounts.
func WithLogger(l hclog.Logger) Option {
	return func(s *Server) { s.l = l.Named("http") }
}

// WithDriverStation sets the Controller the server drives. Without
// this option the server still serves static routes, but every action
// endpoint responds 503.
func WithDriverStation(c Controller) Option {
	return func(s *Server) { s.ds = c }
}
