package server

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/icecrime/ghrelay/configuration"
	"github.com/icecrime/ghrelay/gh"
	"github.com/icecrime/ghrelay/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRelay returns a relay backed by the real GitHub client, pointed at a stubbed upstream.
func makeRelay(t *testing.T, upstream http.Handler) *Server {
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	config := configuration.Default()
	config.Username = test.Username
	config.Token = test.Token
	config.BaseURL = srv.URL

	client, err := gh.MakeClient(config)
	require.NoError(t, err)
	return NewServer(config, client, nil)
}

func TestRelayProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/"+test.Username, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+test.Token, r.Header.Get("Authorization"))
		fmt.Fprintf(w, `{"login":%q,"followers":42,"following":7,"public_repos":3}`, test.Username)
	})
	mux.HandleFunc("/users/"+test.Username+"/repos", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"name":"c","html_url":"https://github.com/icecrime/c","description":null},
			{"name":"a","html_url":"https://github.com/icecrime/a","description":"first"},
			{"name":"b","html_url":"https://github.com/icecrime/b","description":"second"}
		]`)
	})

	rec := serve(makeRelay(t, mux), "GET", "/github", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"username": "icecrime",
		"followers": 42,
		"following": 7,
		"public_repos": [
			{"name":"c","url":"https://github.com/icecrime/c","description":null},
			{"name":"a","url":"https://github.com/icecrime/a","description":"first"},
			{"name":"b","url":"https://github.com/icecrime/b","description":"second"}
		]
	}`, rec.Body.String())
}

func TestRelayProfileUserFailure(t *testing.T) {
	var reposCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/users/"+test.Username, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Bad credentials"}`)
	})
	mux.HandleFunc("/users/"+test.Username+"/repos", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&reposCalls, 1)
		fmt.Fprint(w, `[]`)
	})

	rec := serve(makeRelay(t, mux), "GET", "/github", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Bad credentials"}}`, rec.Body.String())
	assert.Equal(t, int32(0), atomic.LoadInt32(&reposCalls))
}

func TestRelayRepository(t *testing.T) {
	s := makeRelay(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/icecrime/"+test.Repository, r.URL.Path)
		fmt.Fprint(w, `{
			"name": "repository",
			"description": null,
			"stargazers_count": 2147483647,
			"forks_count": 12,
			"open_issues_count": 3,
			"html_url": "https://github.com/icecrime/repository"
		}`)
	}))

	rec := serve(s, "GET", "/github/"+test.Repository, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"name": "repository",
		"description": null,
		"stars": 2147483647,
		"forks": 12,
		"issues": 3,
		"url": "https://github.com/icecrime/repository"
	}`, rec.Body.String())
}

func TestRelayRepositoryNotFound(t *testing.T) {
	s := makeRelay(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found","documentation_url":"https://docs.github.com/rest/repos/repos#get-a-repository"}`)
	}))

	rec := serve(s, "GET", "/github/missing", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Not Found","documentation_url":"https://docs.github.com/rest/repos/repos#get-a-repository"}}`, rec.Body.String())
}

func TestRelayRepositoryNotFoundWithoutBody(t *testing.T) {
	s := makeRelay(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := serve(s, "GET", "/github/missing", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Repository not found"}`, rec.Body.String())
}

func TestRelayCreateIssue(t *testing.T) {
	s := makeRelay(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/icecrime/"+test.Repository+"/issues", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"html_url":"https://x/issues/1"}`)
	}))

	rec := serve(s, "POST", "/github/"+test.Repository+"/issues", `{"title":"Bug","body":"Steps to reproduce"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Issue created successfully","issue_url":"https://x/issues/1"}`, rec.Body.String())
}

func TestRelayCreateIssueForwardsNonStringFields(t *testing.T) {
	s := makeRelay(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/icecrime/"+test.Repository+"/issues", r.URL.Path)
		b, err := ioutil.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":42,"body":"x"}`, string(b))

		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"message":"Invalid request.\n\nFor 'properties/title', 42 is not a string."}`)
	}))

	rec := serve(s, "POST", "/github/"+test.Repository+"/issues", `{"title":42,"body":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Invalid request.\n\nFor 'properties/title', 42 is not a string."}}`, rec.Body.String())
}

func TestRelayCreateIssueValidationSkipsUpstream(t *testing.T) {
	var calls int32
	s := makeRelay(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	rec := serve(s, "POST", "/github/"+test.Repository+"/issues", `{"title":"","body":"Steps to reproduce"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Title and body are required"}`, rec.Body.String())
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestRelayUpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	config := configuration.Default()
	config.Username = test.Username
	config.BaseURL = srv.URL
	client, err := gh.MakeClient(config)
	require.NoError(t, err)
	s := NewServer(config, client, nil)

	rec := serve(s, "POST", "/github/"+test.Repository+"/issues", `{"title":"Bug","body":"Steps"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Error creating issue"}`, rec.Body.String())
}
