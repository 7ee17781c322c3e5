package gh

import (
	"context"
	"net/http"

	"github.com/google/go-github/v66/github"
)

// Client allows us to wrap the use of the go-github library in order to
// be able to mock it in tests.
type Client interface {
	Users() UsersService
	Repositories() RepositoriesService
	Issues() IssuesService
	Raw() RawService
}

//go:generate mockery -name=UsersService -output ../test/mocks
type UsersService interface {
	Get(ctx context.Context, user string) (*github.User, *github.Response, error)
}

//go:generate mockery -name=RepositoriesService -output ../test/mocks
type RepositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
	ListByUser(ctx context.Context, user string, opts *github.RepositoryListByUserOptions) ([]*github.Repository, *github.Response, error)
}

//go:generate mockery -name=IssuesService -output ../test/mocks
type IssuesService interface {
	Create(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
}

// RawService sends requests the typed services cannot express.
//
//go:generate mockery -name=RawService -output ../test/mocks
type RawService interface {
	NewRequest(method, urlStr string, body interface{}, opts ...github.RequestOption) (*http.Request, error)
	Do(ctx context.Context, req *http.Request, v interface{}) (*github.Response, error)
}
