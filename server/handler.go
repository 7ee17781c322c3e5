package server

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/icecrime/ghrelay/events"
	"github.com/icecrime/ghrelay/gh"

	"github.com/google/go-github/v66/github"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	fetchProfileFallback    = "Error fetching data"
	fetchRepositoryFallback = "Repository not found"
	createIssueFallback     = "Error creating issue"

	missingFieldsMessage = "Title and body are required"
	invalidBodyMessage   = "Invalid request body"
	issueCreatedMessage  = "Issue created successfully"
)

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.upstream.User(r.Context())
	if err != nil {
		s.upstreamFailure(w, err, fetchProfileFallback)
		return
	}
	repos, err := s.upstream.Repositories(r.Context())
	if err != nil {
		s.upstreamFailure(w, err, fetchProfileFallback)
		return
	}
	writeJSON(w, http.StatusOK, makeProfileSummary(user, repos))
}

func (s *Server) getRepository(w http.ResponseWriter, r *http.Request) {
	repo, err := s.upstream.Repository(r.Context(), mux.Vars(r)["repo"])
	if err != nil {
		s.upstreamFailure(w, err, fetchRepositoryFallback)
		return
	}
	writeJSON(w, http.StatusOK, makeRepoDetail(repo))
}

func (s *Server) createIssue(w http.ResponseWriter, r *http.Request) {
	var req IssueCreationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		logrus.WithField("error", err).Debug("malformed issue creation request")
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: invalidBodyMessage})
		return
	}
	if !truthy(req.Title) || !truthy(req.Body) {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: missingFieldsMessage})
		return
	}

	repoName := mux.Vars(r)["repo"]
	issue, err := s.openIssue(r, repoName, req)
	if err != nil {
		s.upstreamFailure(w, err, createIssueFallback)
		return
	}

	if err := s.publisher.PublishIssueCreated(events.IssueCreated{
		Repository: fmt.Sprintf("%s/%s", s.config.Username, repoName),
		Title:      fmt.Sprint(req.Title),
		IssueURL:   issue.GetHTMLURL(),
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		logrus.WithField("error", err).Warn("publishing issue event")
	}

	writeJSON(w, http.StatusOK, IssueCreationResult{
		Message:  issueCreatedMessage,
		IssueURL: issue.GetHTMLURL(),
	})
}

// openIssue creates the issue through the typed API when both fields are strings, and forwards
// them untouched otherwise.
func (s *Server) openIssue(r *http.Request, repoName string, req IssueCreationRequest) (*github.Issue, error) {
	title, titleOK := req.Title.(string)
	body, bodyOK := req.Body.(string)
	if titleOK && bodyOK {
		return s.upstream.CreateIssue(r.Context(), repoName, title, body)
	}
	return s.upstream.CreateIssueFields(r.Context(), repoName, map[string]interface{}{
		"title": req.Title,
		"body":  req.Body,
	})
}

// truthy reports whether a decoded JSON value counts as provided.
func truthy(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0 && !math.IsNaN(v)
	default:
		return true
	}
}

// upstreamFailure reports any failure to reach GitHub as an internal server error, forwarding the
// upstream body when there is one.
func (s *Server) upstreamFailure(w http.ResponseWriter, err error, fallback string) {
	logrus.WithField("error", err).Warn("upstream request failed")

	var payload interface{} = fallback
	if upstreamErr, ok := gh.AsUpstreamError(err); ok {
		payload = upstreamErr.Payload(fallback)
	}
	writeJSON(w, http.StatusInternalServerError, errorEnvelope{Error: payload})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithField("error", err).Error("write response")
	}
}
