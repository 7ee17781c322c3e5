package test

import "github.com/google/go-github/v66/github"

func NewRepositoryBuilder(name string) *RepositoryBuilder {
	return &RepositoryBuilder{
		Value: &github.Repository{
			Name:    MakeString(name),
			HTMLURL: MakeString("https://github.com/" + Username + "/" + name),
		},
	}
}

type RepositoryBuilder struct {
	Value *github.Repository
}

func (r *RepositoryBuilder) Description(description string) *RepositoryBuilder {
	r.Value.Description = MakeString(description)
	return r
}

func (r *RepositoryBuilder) Counts(stars, forks, issues int) *RepositoryBuilder {
	r.Value.StargazersCount = MakeInt(stars)
	r.Value.ForksCount = MakeInt(forks)
	r.Value.OpenIssuesCount = MakeInt(issues)
	return r
}
