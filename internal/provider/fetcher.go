package provider

import (
	"context"
	"sync"

	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitpulse/internal/effect"
	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/logze/v2"
)

// FetchGroup is one auth-context bucket of a multi-group fetch: a set of
// repositories served by a single credential.
type FetchGroup struct {
	Name  string
	Fetch effect.Effect[[]model.Commit]
}

// GatherGroups builds an Effect that invokes every group's fetch
// concurrently and flattens the results in group order, not completion
// order, so the merged commit list is deterministic for a fixed grouping.
//
// A failed group contributes an empty slice and a logged error instead of
// failing the whole request; the result is marked Partial so callers can
// observe the degradation. With failOnPartial set the first group failure
// fails the entire Effect instead.
func GatherGroups(groups []FetchGroup, failOnPartial bool, log logze.Logger) effect.Effect[model.FetchResult] {
	return func(ctx context.Context) (model.FetchResult, error) {
		timer := abstract.StartTimer()

		slots := make([][]model.Commit, len(groups))
		groupErrs := make([]error, len(groups))

		var wg sync.WaitGroup
		for i, group := range groups {
			wg.Add(1)
			go func() {
				defer wg.Done()
				commits, err := group.Fetch(ctx)
				if err != nil {
					groupErrs[i] = err
					return
				}
				slots[i] = commits
			}()
		}
		wg.Wait()

		res := model.FetchResult{}
		total := 0
		for i, group := range groups {
			if err := groupErrs[i]; err != nil {
				if failOnPartial {
					return model.FetchResult{}, errm.Wrap(err, "fetch group "+group.Name)
				}
				log.Error("fetch group failed, substituting empty result", "group", group.Name, "error", err)
				res.Partial = true
				res.FailedGroups = append(res.FailedGroups, group.Name)
				continue
			}
			total += len(slots[i])
		}

		res.Commits = make([]model.Commit, 0, total)
		for _, commits := range slots {
			res.Commits = append(res.Commits, commits...)
		}

		log.Debug("gathered commit groups",
			"groups", len(groups),
			"commits", len(res.Commits),
			"partial", res.Partial,
			"elapsed", timer.ElapsedTime())

		return res, nil
	}
}
