package server

import (
	"net/http"

	"github.com/icecrime/ghrelay/configuration"
	"github.com/icecrime/ghrelay/events"
	"github.com/icecrime/ghrelay/gh"

	"github.com/sirupsen/logrus"
)

// Server relays a fixed set of requests to the GitHub API on behalf of the configured user.
type Server struct {
	config    *configuration.Config
	upstream  *gh.Upstream
	publisher events.Publisher
	handler   http.Handler
}

// NewServer returns a new server instance.
func NewServer(config *configuration.Config, client gh.Client, publisher events.Publisher) *Server {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	s := &Server{
		config:    config,
		upstream:  gh.NewUpstream(client, config.Username),
		publisher: publisher,
	}
	s.handler = s.newRouter()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run listens on the configured port, and only returns when the listener fails.
func (s *Server) Run() error {
	logrus.Infof("listening on %q", s.config.ListenAddr())
	return http.ListenAndServe(s.config.ListenAddr(), s)
}
