// Package provider wraps hosting-platform API clients behind the
// DataProvider boundary: repositories are partitioned across authentication
// contexts, fetched concurrently per group and merged into one commit list.
package provider

import (
	"context"

	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/gitpulse/internal/effect"
	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/gitpulse/internal/provider/github"
	"github.com/maxbolgarin/gitpulse/internal/provider/gitlab"
	"github.com/maxbolgarin/logze/v2"
)

// GroupFetcher is the platform-specific half of a data provider: it fetches
// commits for the repositories of a single auth-context group.
type GroupFetcher interface {
	// Installations reports the App installations this fetcher can serve;
	// empty means every repository is served by the token credential.
	Installations() []model.Installation

	// FetchGroup fetches commits for one bucket of repositories sharing a
	// credential. The bucket is "oauth" or a decimal installation id.
	FetchGroup(bucket string, repositories []string, dateRange model.DateRange, branch string) effect.Effect[[]model.Commit]
}

// UserResolver is implemented by platforms that can report the login of the
// authenticated user, used to resolve the "me" placeholder.
type UserResolver interface {
	CurrentUserLogin(ctx context.Context) (string, error)
}

// New creates a hosting-platform data provider based on the configuration.
func New(cfg Config) (model.DataProvider, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "validate config")
	}

	var (
		fetcher GroupFetcher
		err     error
	)
	switch cfg.Type {
	case GitHub:
		fetcher, err = github.New(github.Config{
			BaseURL:          cfg.BaseURL,
			Token:            cfg.Token,
			Installations:    cfg.Installations,
			FetchCommitStats: cfg.FetchCommitStats,
		})
	case GitLab:
		fetcher, err = gitlab.New(gitlab.Config{
			BaseURL: cfg.BaseURL,
			Token:   cfg.Token,
		})
	default:
		return nil, erro.New("unsupported provider type: " + string(cfg.Type))
	}
	if err != nil {
		return nil, erro.Wrap(err, "failed to create platform fetcher")
	}

	return NewMulti(fetcher, cfg), nil
}

var (
	_ model.DataProvider         = (*Multi)(nil)
	_ model.DetailedDataProvider = (*Multi)(nil)
)

// Multi assembles a platform fetcher into a full DataProvider: it maps
// repositories to auth-context groups and gathers the per-group fetches.
type Multi struct {
	fetcher GroupFetcher
	cfg     Config
	log     logze.Logger
}

// NewMulti wraps a platform fetcher with auth-group mapping and gathering.
func NewMulti(fetcher GroupFetcher, cfg Config) *Multi {
	return &Multi{
		fetcher: fetcher,
		cfg:     cfg,
		log:     logze.With("component", "provider", "type", string(cfg.Type)),
	}
}

// FetchCommits implements model.DataProvider.
func (m *Multi) FetchCommits(repositories []string, dateRange model.DateRange, branch string) effect.Effect[[]model.Commit] {
	return effect.Map(m.FetchCommitsDetailed(repositories, dateRange, branch),
		func(res model.FetchResult) []model.Commit { return res.Commits })
}

// FetchCommitsDetailed implements model.DetailedDataProvider. Group order is
// fixed (oauth bucket first, then installations in configuration order) so
// the merged commit ordering is deterministic even though fetches race.
func (m *Multi) FetchCommitsDetailed(repositories []string, dateRange model.DateRange, branch string) effect.Effect[model.FetchResult] {
	buckets := MapRepositoriesToAuthGroups(repositories, m.fetcher.Installations(), m.cfg.SelectedInstallationIDs)

	groups := make([]FetchGroup, 0, len(buckets))
	for _, bucket := range orderedBuckets(buckets, m.fetcher.Installations()) {
		groups = append(groups, FetchGroup{
			Name:  bucket,
			Fetch: m.fetcher.FetchGroup(bucket, buckets[bucket], dateRange, branch),
		})
	}

	return GatherGroups(groups, m.cfg.FailOnPartialFetch, m.log)
}

// CurrentUserLogin forwards to the platform fetcher when it supports it.
func (m *Multi) CurrentUserLogin(ctx context.Context) (string, error) {
	resolver, ok := m.fetcher.(UserResolver)
	if !ok {
		return "", erro.New("provider cannot resolve the current user")
	}
	return resolver.CurrentUserLogin(ctx)
}

// orderedBuckets returns present bucket keys in deterministic order: the
// oauth bucket first, then installation buckets in configuration order.
func orderedBuckets(buckets map[string][]string, installations []model.Installation) []string {
	ordered := make([]string, 0, len(buckets))
	if _, ok := buckets[model.OAuthBucket]; ok {
		ordered = append(ordered, model.OAuthBucket)
	}
	for _, inst := range installations {
		key := instBucketKey(inst.ID)
		if _, ok := buckets[key]; ok {
			ordered = append(ordered, key)
		}
	}
	return ordered
}
