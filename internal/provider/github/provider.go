package github

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitpulse/internal/effect"
	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/logze/v2"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL = "https://github.com"
	commitsPerPage = 100
)

// Config holds everything needed to talk to GitHub for one deployment:
// the personal OAuth token plus the tokens of the available App
// installations. Token exchange happens outside this service.
type Config struct {
	BaseURL          string
	Token            string
	Installations    []model.Installation
	FetchCommitStats bool
}

// Provider fetches commits from GitHub. It keeps one authenticated client
// per auth-context group: the OAuth client plus one per installation.
type Provider struct {
	oauthClient *github.Client
	instClients map[string]*github.Client
	config      Config
	logger      logze.Logger
}

// New creates a new GitHub provider.
func New(config Config) (*Provider, error) {
	if config.Token == "" {
		return nil, errm.New("GitHub token is required")
	}
	log := logze.With("provider", "github")

	oauthClient, err := newClient(config.Token, config.BaseURL)
	if err != nil {
		return nil, errm.Wrap(err, "failed to create OAuth client")
	}

	instClients := make(map[string]*github.Client, len(config.Installations))
	for _, inst := range config.Installations {
		client, err := newClient(inst.Token, config.BaseURL)
		if err != nil {
			return nil, errm.Wrap(err, "failed to create installation client for "+inst.AccountLogin)
		}
		instClients[instKey(inst.ID)] = client
	}

	return &Provider{
		oauthClient: oauthClient,
		instClients: instClients,
		config:      config,
		logger:      log,
	}, nil
}

func instKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func newClient(token, baseURL string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(tc)

	// GitHub Enterprise needs explicit API endpoints.
	if baseURL != "" && baseURL != defaultBaseURL {
		var err error
		client, err = github.NewClient(tc).WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, errm.Wrap(err, "failed to create GitHub Enterprise client")
		}
	}
	return client, nil
}

// Installations reports the App installations this provider can serve.
func (p *Provider) Installations() []model.Installation {
	return p.config.Installations
}

// FetchGroup describes fetching every repository of one auth-context group
// with the group's credential. Nothing runs until the Effect is invoked.
func (p *Provider) FetchGroup(bucket string, repositories []string, dateRange model.DateRange, branch string) effect.Effect[[]model.Commit] {
	return func(ctx context.Context) ([]model.Commit, error) {
		client := p.clientForBucket(bucket)

		var all []model.Commit
		for _, repository := range repositories {
			commits, err := p.fetchRepository(ctx, client, repository, dateRange, branch)
			if err != nil {
				return nil, errm.Wrap(err, "failed to fetch commits for "+repository)
			}
			all = append(all, commits...)
		}
		return all, nil
	}
}

// CurrentUserLogin reports the login of the OAuth-authenticated user.
func (p *Provider) CurrentUserLogin(ctx context.Context) (string, error) {
	user, _, err := p.oauthClient.Users.Get(ctx, "")
	if err != nil {
		return "", errm.Wrap(err, "failed to get current user")
	}
	return user.GetLogin(), nil
}

func (p *Provider) clientForBucket(bucket string) *github.Client {
	if client, ok := p.instClients[bucket]; ok {
		return client
	}
	return p.oauthClient
}

func (p *Provider) fetchRepository(ctx context.Context, client *github.Client, repository string, dateRange model.DateRange, branch string) ([]model.Commit, error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 {
		return nil, errm.New("invalid GitHub repository format, expected 'owner/repo'")
	}
	owner, repo := parts[0], parts[1]

	opts := &github.CommitsListOptions{
		SHA:         branch,
		Since:       dateRange.Start,
		Until:       dateRange.End,
		ListOptions: github.ListOptions{PerPage: commitsPerPage},
	}

	var all []*github.RepositoryCommit
	for {
		commits, resp, err := client.Repositories.ListCommits(ctx, owner, repo, opts)
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
	for _, rc := range all {
		commit := p.convertCommit(rc, repository)

		// The list endpoint omits line counts; fetching them costs one
		// extra request per commit, so it is opt-in.
		if p.config.FetchCommitStats {
			if err := p.attachStats(ctx, client, owner, repo, &commit); err != nil {
				p.logger.Debug("failed to fetch commit stats", "sha", commit.SHA, "error", err)
			}
		}
		result = append(result, commit)
	}
	return result, nil
}

func (p *Provider) convertCommit(rc *github.RepositoryCommit, repository string) model.Commit {
	commit := model.Commit{
		SHA:        rc.GetSHA(),
		Message:    rc.GetCommit().GetMessage(),
		Repository: repository,
		URL:        rc.GetHTMLURL(),
	}

	// Prefer the platform login; fall back to the git author name for
	// commits not linked to an account.
	if author := rc.GetAuthor(); author != nil && author.GetLogin() != "" {
		commit.Author = author.GetLogin()
	} else {
		commit.Author = rc.GetCommit().GetAuthor().GetName()
	}

	if date := rc.GetCommit().GetAuthor().GetDate(); !date.IsZero() {
		commit.Date = date.Time.Format(time.RFC3339)
	}
	return commit
}

func (p *Provider) attachStats(ctx context.Context, client *github.Client, owner, repo string, commit *model.Commit) error {
	full, _, err := client.Repositories.GetCommit(ctx, owner, repo, commit.SHA, nil)
	if err != nil {
		return errm.Wrap(err, "failed to get commit")
	}
	if stats := full.GetStats(); stats != nil {
		commit.Additions = stats.GetAdditions()
		commit.Deletions = stats.GetDeletions()
	}
	return nil
}
