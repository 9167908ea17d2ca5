// Package httpapi exposes the Driver Station's Public API operations
// over HTTP: a status page, JSON action endpoints, a Prometheus
// metrics endpoint, and a websocket event stream. Modeled on the
// teacher's pkg/http server, generalized from field-controller/TLM
// concerns to driving a single Controller.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/eventstream"
)

// Server is a Driver Station's HTTP surface.
type Server struct {
	r  chi.Router
	l  hclog.Logger
	ds Controller
	es *eventstream.EventStream
}

// New builds the router and mounts every route. The returned Server
// implements http.Handler and can be served directly or mounted into
// a larger mux.
func New(opts ...Option) *Server {
	s := &Server{
		r: chi.NewRouter(),
		l: hclog.NewNullLogger(),
	}

	for _, o := range opts {
		o(s)
	}

	s.es = eventstream.New(eventstream.WithLogger(s.l))

	if s.ds != nil {
		s.wireEventStream()
	}

	s.routes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

func (s *Server) routes() {
	if s.ds != nil {
		reg := s.ds.MetricsRegistry()
		s.r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	} else {
		s.r.Handle("/metrics", promhttp.Handler())
	}
	s.r.Get("/events", s.es.Handler)

	s.r.Get("/", s.statusPage)
	s.r.Get("/api/status", s.getStatus)

	s.r.Post("/api/team", s.setTeamNumber)
	s.r.Post("/api/alliance", s.setAlliance)
	s.r.Post("/api/position", s.setPosition)
	s.r.Post("/api/mode", s.setMode)
	s.r.Post("/api/enabled", s.setEnabled)
	s.r.Post("/api/estop", s.postEStop)
	s.r.Post("/api/estop/clear", s.postEStopClear)
	s.r.Post("/api/reboot", s.postReboot)
	s.r.Post("/api/restart-code", s.postRestartCode)
	s.r.Post("/api/protocol", s.postProtocol)
}

// wireEventStream subscribes to every Config Store topic and forwards
// each published Event onto the websocket stream, so a connected
// browser sees the same changes in-process subscribers receive.
func (s *Server) wireEventStream() {
	topics := []config.Topic{
		config.TopicStatusText,
		config.TopicVoltage,
		config.TopicEnabled,
		config.TopicMode,
		config.TopicEStop,
		config.TopicComms,
		config.TopicTelemetry,
		config.TopicAllianceStation,
		config.TopicProtocol,
	}

	for _, topic := range topics {
		t := topic
		s.ds.Subscribe(t, func(e config.Event) {
			s.es.PublishConfigEvent(string(e.Topic), e.Field, e.Value)
		})
	}
}
