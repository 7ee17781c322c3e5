package server

import "github.com/google/go-github/v66/github"

// ProfileSummary is the relayed view of the configured user.
type ProfileSummary struct {
	Username    string        `json:"username"`
	Followers   int           `json:"followers"`
	Following   int           `json:"following"`
	PublicRepos []RepoSummary `json:"public_repos"`
}

// RepoSummary is the relayed view of a repository in a profile listing.
type RepoSummary struct {
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
}

// RepoDetail is the relayed view of a single repository.
type RepoDetail struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Stars       int     `json:"stars"`
	Forks       int     `json:"forks"`
	Issues      int     `json:"issues"`
	URL         string  `json:"url"`
}

// IssueCreationRequest is the body expected when creating an issue. Fields are kept untyped so
// that non-string values reach GitHub, which rejects them.
type IssueCreationRequest struct {
	Title interface{} `json:"title"`
	Body  interface{} `json:"body"`
}

// IssueCreationResult is returned once an issue was created.
type IssueCreationResult struct {
	Message  string `json:"message"`
	IssueURL string `json:"issue_url"`
}

type errorEnvelope struct {
	Error interface{} `json:"error"`
}

func makeProfileSummary(user *github.User, repos []*github.Repository) *ProfileSummary {
	summary := &ProfileSummary{
		Username:    user.GetLogin(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		PublicRepos: make([]RepoSummary, 0, len(repos)),
	}
	for _, repo := range repos {
		summary.PublicRepos = append(summary.PublicRepos, RepoSummary{
			Name:        repo.GetName(),
			URL:         repo.GetHTMLURL(),
			Description: repo.Description,
		})
	}
	return summary
}

func makeRepoDetail(repo *github.Repository) *RepoDetail {
	return &RepoDetail{
		Name:        repo.GetName(),
		Description: repo.Description,
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Issues:      repo.GetOpenIssuesCount(),
		URL:         repo.GetHTMLURL(),
	}
}
