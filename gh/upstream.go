package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/google/go-github/v66/github"
	"github.com/pkg/errors"
)

// UpstreamError is the failure of a call to the GitHub API. It makes no distinction between
// transport failures and error statuses: StatusCode is zero and Body is empty when GitHub could
// not be reached at all.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Cause() error {
	return e.Err
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Payload returns what should be reported to the caller: the upstream body when GitHub provided
// one, and the fallback message otherwise. JSON bodies are returned as raw JSON so that they
// serialize verbatim.
func (e *UpstreamError) Payload(fallback string) interface{} {
	body := bytes.TrimSpace(e.Body)
	if len(body) == 0 {
		return fallback
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}

// AsUpstreamError returns the UpstreamError in the chain of err, if any.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	ok := errors.As(err, &upstreamErr)
	return upstreamErr, ok
}

func newUpstreamError(op string, resp *github.Response, err error) *UpstreamError {
	upstreamErr := &UpstreamError{Op: op, Err: err}
	if resp == nil || resp.Response == nil {
		return upstreamErr
	}
	upstreamErr.StatusCode = resp.StatusCode

	// go-github consumes the body to decode error responses, but puts it back in place.
	if resp.Body != nil {
		if b, readErr := ioutil.ReadAll(resp.Body); readErr == nil {
			upstreamErr.Body = b
		}
	}
	if len(bytes.TrimSpace(upstreamErr.Body)) == 0 {
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) && errResp.Message != "" {
			upstreamErr.Body, _ = json.Marshal(errResp)
		}
	}
	return upstreamErr
}

// Upstream performs the relay's calls to the GitHub API on behalf of a single user.
type Upstream struct {
	client   Client
	username string
}

// NewUpstream returns an Upstream querying GitHub about username.
func NewUpstream(client Client, username string) *Upstream {
	return &Upstream{
		client:   client,
		username: username,
	}
}

// User retrieves the user record. Errors are always of type *UpstreamError.
func (u *Upstream) User(ctx context.Context) (*github.User, error) {
	user, resp, err := u.client.Users().Get(ctx, u.username)
	if err != nil {
		return nil, newUpstreamError(fmt.Sprintf("get user %q", u.username), resp, err)
	}
	return user, nil
}

// Repositories retrieves the first page of the user's repositories, in upstream order.
func (u *Upstream) Repositories(ctx context.Context) ([]*github.Repository, error) {
	repos, resp, err := u.client.Repositories().ListByUser(ctx, u.username, nil)
	if err != nil {
		return nil, newUpstreamError(fmt.Sprintf("list repositories for %q", u.username), resp, err)
	}
	return repos, nil
}

// Repository retrieves a repository owned by the user. The name is used verbatim.
func (u *Upstream) Repository(ctx context.Context, name string) (*github.Repository, error) {
	repo, resp, err := u.client.Repositories().Get(ctx, u.username, name)
	if err != nil {
		return nil, newUpstreamError(fmt.Sprintf("get repository \"%s/%s\"", u.username, name), resp, err)
	}
	return repo, nil
}

// CreateIssue opens an issue in a repository owned by the user.
func (u *Upstream) CreateIssue(ctx context.Context, name, title, body string) (*github.Issue, error) {
	issue, resp, err := u.client.Issues().Create(ctx, u.username, name, &github.IssueRequest{
		Title: &title,
		Body:  &body,
	})
	if err != nil {
		return nil, newUpstreamError(fmt.Sprintf("create issue in \"%s/%s\"", u.username, name), resp, err)
	}
	return issue, nil
}

// CreateIssueFields opens an issue from untyped request fields, which are sent to GitHub as is.
// GitHub is left to reject fields of the wrong type.
func (u *Upstream) CreateIssueFields(ctx context.Context, name string, fields map[string]interface{}) (*github.Issue, error) {
	op := fmt.Sprintf("create issue in \"%s/%s\"", u.username, name)
	req, err := u.client.Raw().NewRequest("POST", fmt.Sprintf("repos/%v/%v/issues", u.username, name), fields)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: err}
	}

	issue := new(github.Issue)
	resp, err := u.client.Raw().Do(ctx, req, issue)
	if err != nil {
		return nil, newUpstreamError(op, resp, err)
	}
	return issue, nil
}
