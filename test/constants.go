package test

const (
	// Repository is the GitHub test repository name.
	Repository = "repository"

	// Username is the GitHub test username.
	Username = "icecrime"

	// Token is the GitHub test token.
	Token = "d34db33f"

	// IssueURL is the URL of the test GitHub issue.
	IssueURL = "https://github.com/icecrime/repository/issues/1"
)
