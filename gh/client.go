package gh

import (
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/icecrime/ghrelay/configuration"

	"github.com/google/go-github/v66/github"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// MediaType is the Accept header sent with every request to the GitHub API.
const MediaType = "application/vnd.github.v3+json"

type DefaultClient struct {
	Client *github.Client
}

func (d DefaultClient) Users() UsersService {
	return d.Client.Users
}

func (d DefaultClient) Repositories() RepositoriesService {
	return d.Client.Repositories
}

func (d DefaultClient) Issues() IssuesService {
	return d.Client.Issues
}

func (d DefaultClient) Raw() RawService {
	return d.Client
}

// GetToken returns the configured token, falling back to the content of the token file.
func GetToken(c *configuration.Config) string {
	if c.Token != "" {
		return c.Token
	}

	if c.TokenFile != "" {
		if b, err := ioutil.ReadFile(c.TokenFile); err == nil {
			return strings.TrimSpace(string(b))
		}
	}

	return ""
}

// MakeClient returns a GitHub client authenticating every request with the configured token
// and targeting the configured base URL.
func MakeClient(c *configuration.Config) (Client, error) {
	baseURL, err := url.Parse(c.NormalizedBaseURL())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", c.BaseURL)
	}

	var transport http.RoundTripper = &acceptTransport{base: http.DefaultTransport}
	if token := GetToken(c); token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   transport,
		}
	}

	client := github.NewClient(&http.Client{Transport: transport})
	client.BaseURL = baseURL
	return DefaultClient{client}, nil
}

// acceptTransport overrides the preview media types some go-github calls request.
type acceptTransport struct {
	base http.RoundTripper
}

func (t *acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", MediaType)
	return t.base.RoundTrip(req)
}
