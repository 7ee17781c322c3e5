package test

import (
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-github/v66/github"
)

func AssertExpectations(clt *TestClient, t *testing.T) {
	clt.MockUsers.AssertExpectations(t)
	clt.MockRepositories.AssertExpectations(t)
	clt.MockIssues.AssertExpectations(t)
	clt.MockRaw.AssertExpectations(t)
}

func MakeInt(value int) *int {
	v := new(int)
	*v = value
	return v
}

func MakeString(value string) *string {
	v := new(string)
	*v = value
	return v
}

// MakeResponse returns a go-github response as it would be returned alongside an error.
func MakeResponse(statusCode int, body string) *github.Response {
	return &github.Response{
		Response: &http.Response{
			StatusCode: statusCode,
			Body:       ioutil.NopCloser(strings.NewReader(body)),
		},
	}
}
