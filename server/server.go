package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	fetcher ActivityFetcher
	now     func() time.Time
}

func New(fetcher ActivityFetcher) *Server {
	return &Server{
		fetcher: fetcher,
		now:     time.Now,
	}
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware)

	router.HandleFunc("/", s.dashboardHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)

	return router
}

// Serve blocks on the HTTP listener.
func (s *Server) Serve(port string) error {
	log.Infof("server starting on http://localhost:%s", port)
	return http.ListenAndServe(":"+port, s.routes())
}
