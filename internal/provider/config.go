package provider

import (
	"slices"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitpulse/internal/model"
)

type Type string

// Supported hosting-platform types.
const (
	GitHub Type = "github"
	GitLab Type = "gitlab"
)

var supportedTypes = []Type{GitHub, GitLab}

// Config represents hosting-platform provider configuration. Installation
// tokens are supplied by the deployment; the token-exchange protocol itself
// is outside this service.
type Config struct {
	Type    Type   `yaml:"type" env:"PROVIDER_TYPE"`
	BaseURL string `yaml:"base_url" env:"PROVIDER_BASE_URL"`
	Token   string `yaml:"token" env:"PROVIDER_TOKEN"`

	// Installations lists the App installations available to this
	// deployment; SelectedInstallationIDs picks which of them may serve
	// repository fetches. Owners without a selected installation are
	// served by the OAuth token.
	Installations           []model.Installation `yaml:"installations"`
	SelectedInstallationIDs []int64              `yaml:"selected_installation_ids" env:"PROVIDER_SELECTED_INSTALLATION_IDS"`

	// FailOnPartialFetch makes a multi-group fetch fail when any group
	// fails, instead of returning a partial result.
	FailOnPartialFetch bool `yaml:"fail_on_partial_fetch" env:"PROVIDER_FAIL_ON_PARTIAL_FETCH"`

	// FetchCommitStats enables the per-commit follow-up request that
	// retrieves line-change counts (GitHub only; one extra call per commit).
	FetchCommitStats bool `yaml:"fetch_commit_stats" env:"PROVIDER_FETCH_COMMIT_STATS"`
}

func (c *Config) PrepareAndValidate() error {
	if c.Token == "" {
		return errm.New("token is required")
	}
	if c.Type == "" || !slices.Contains(supportedTypes, c.Type) {
		return errm.New("invalid provider type: " + string(c.Type))
	}
	for _, inst := range c.Installations {
		if inst.ID == 0 || inst.AccountLogin == "" || inst.Token == "" {
			return errm.New("installation entries require id, account_login and token")
		}
	}
	return nil
}
