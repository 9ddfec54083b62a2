package provider

import (
	"strconv"
	"strings"

	"github.com/maxbolgarin/gitpulse/internal/model"
)

// MapRepositoriesToAuthGroups partitions repository names across
// authentication contexts: one bucket per selected installation plus a
// single "oauth" bucket for everything else. Minimizing the number of
// distinct authenticated clients keeps multi-organization requests cheap.
//
// For each owner (text before the first '/') the first installation whose
// account login matches and whose id is selected wins; the owner-to-bucket
// decision is cached so repeated owners cost one lookup. Repositories whose
// owner has no matching selected installation fall into the oauth bucket.
// Pure: inputs are never mutated and the output depends only on arguments.
func MapRepositoriesToAuthGroups(repositories []string, installations []model.Installation, selectedIDs []int64) map[string][]string {
	selected := make(map[int64]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = struct{}{}
	}

	groups := make(map[string][]string)
	ownerBuckets := make(map[string]string)

	for _, repo := range repositories {
		owner := repo
		if i := strings.Index(repo, "/"); i >= 0 {
			owner = repo[:i]
		}

		bucket, cached := ownerBuckets[owner]
		if !cached {
			bucket = model.OAuthBucket
			for _, inst := range installations {
				if !strings.EqualFold(inst.AccountLogin, owner) {
					continue
				}
				if _, ok := selected[inst.ID]; !ok {
					continue
				}
				bucket = instBucketKey(inst.ID)
				break
			}
			ownerBuckets[owner] = bucket
		}

		groups[bucket] = append(groups[bucket], repo)
	}

	return groups
}

// instBucketKey is the auth-group key of an installation: its decimal id.
func instBucketKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
