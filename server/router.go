package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func (s *Server) newRouter() http.Handler {
	routes := []struct {
		method  string
		path    string
		handler http.HandlerFunc
	}{
		{"GET", "/github", s.getProfile},
		{"GET", "/github/{repo}", s.getRepository},
		{"POST", "/github/{repo}/issues", s.createIssue},
	}

	// Paths are matched with or without a trailing slash, without redirecting.
	r := mux.NewRouter()
	for _, route := range routes {
		r.HandleFunc(route.path, route.handler).Methods(route.method)
		r.HandleFunc(route.path+"/", route.handler).Methods(route.method)
	}

	// Unmatched requests get logged too.
	return logRequests(r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Info("handled request")
	})
}
