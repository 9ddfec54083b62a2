package gitlab

import (
	"context"
	"time"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitpulse/internal/effect"
	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/logze/v2"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const (
	defaultBaseURL = "https://gitlab.com"
	commitsPerPage = 100
)

// Config holds GitLab connection settings.
type Config struct {
	BaseURL string
	Token   string
}

// Provider fetches commits from GitLab. GitLab has no App-installation
// concept here, so every repository is served by the token credential.
type Provider struct {
	client *gitlab.Client
	config Config
	logger logze.Logger
}

// New creates a new GitLab provider.
func New(config Config) (*Provider, error) {
	if config.Token == "" {
		return nil, errm.New("GitLab token is required")
	}
	logger := logze.With("provider", "gitlab")

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client, err := gitlab.NewClient(config.Token, gitlab.WithBaseURL(baseURL))
	if err != nil {
		return nil, errm.Wrap(err, "failed to create GitLab client")
	}

	return &Provider{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// Installations is always empty: all repositories share the token bucket.
func (p *Provider) Installations() []model.Installation {
	return nil
}

// FetchGroup describes fetching every repository of the group with the
// token credential. Nothing runs until the Effect is invoked.
func (p *Provider) FetchGroup(_ string, repositories []string, dateRange model.DateRange, branch string) effect.Effect[[]model.Commit] {
	return func(ctx context.Context) ([]model.Commit, error) {
		var all []model.Commit
		for _, repository := range repositories {
			commits, err := p.fetchProject(ctx, repository, dateRange, branch)
			if err != nil {
				return nil, errm.Wrap(err, "failed to fetch commits for "+repository)
			}
			all = append(all, commits...)
		}
		return all, nil
	}
}

// CurrentUserLogin reports the username of the authenticated user.
func (p *Provider) CurrentUserLogin(ctx context.Context) (string, error) {
	user, _, err := p.client.Users.CurrentUser(gitlab.WithContext(ctx))
	if err != nil {
		return "", errm.Wrap(err, "failed to get current user")
	}
	return user.Username, nil
}

func (p *Provider) fetchProject(ctx context.Context, repository string, dateRange model.DateRange, branch string) ([]model.Commit, error) {
	opts := &gitlab.ListCommitsOptions{
		Since:       gitlab.Ptr(dateRange.Start),
		Until:       gitlab.Ptr(dateRange.End),
		WithStats:   gitlab.Ptr(true),
		ListOptions: gitlab.ListOptions{PerPage: commitsPerPage},
	}
	if branch != "" {
		opts.RefName = gitlab.Ptr(branch)
	}

	var all []*gitlab.Commit
	for {
		commits, resp, err := p.client.Commits.ListCommits(repository, opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, errm.Wrap(err, "failed to list commits")
		}
		all = append(all, commits...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	result := make([]model.Commit, 0, len(all))
	for _, c := range all {
		commit := model.Commit{
			SHA:        c.ID,
			Message:    c.Message,
			Author:     c.AuthorName,
			Repository: repository,
			URL:        c.WebURL,
		}
		if c.CreatedAt != nil {
			commit.Date = c.CreatedAt.Format(time.RFC3339)
		}
		if c.Stats != nil {
			commit.Additions = c.Stats.Additions
			commit.Deletions = c.Stats.Deletions
		}
		result = append(result, commit)
	}
	return result, nil
}
