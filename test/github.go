package test

import (
	"github.com/icecrime/ghrelay/gh"
	"github.com/icecrime/ghrelay/test/mocks"

	"github.com/google/go-github/v66/github"
)

type TestClient struct {
	MockUsers        mocks.UsersService
	MockRepositories mocks.RepositoriesService
	MockIssues       mocks.IssuesService
	MockRaw          mocks.RawService
}

func (t *TestClient) Users() gh.UsersService {
	return &t.MockUsers
}

func (t *TestClient) Repositories() gh.RepositoriesService {
	return &t.MockRepositories
}

func (t *TestClient) Issues() gh.IssuesService {
	return &t.MockIssues
}

func (t *TestClient) Raw() gh.RawService {
	return &t.MockRaw
}

func MakeUser(login string, followers, following int) *github.User {
	return &github.User{
		Login:     MakeString(login),
		Followers: MakeInt(followers),
		Following: MakeInt(following),
	}
}

func MakeIssue(htmlURL string) *github.Issue {
	return &github.Issue{
		Number:  MakeInt(1),
		HTMLURL: MakeString(htmlURL),
	}
}
