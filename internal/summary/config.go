package summary

import "github.com/maxbolgarin/errm"

const (
	defaultMaxRepositories      = 100
	defaultMaxDateRangeDays     = 365
	defaultMinDateRangeDays     = 0
	defaultMaxUsers             = 50
	defaultMaxBranchNameLength  = 250
	defaultTopRepositoriesLimit = 5
)

// Config holds validation limits and aggregation knobs for the summary pipeline.
type Config struct {
	MaxRepositories     int  `yaml:"max_repositories" env:"SUMMARY_MAX_REPOSITORIES"`
	MaxDateRangeDays    int  `yaml:"max_date_range_days" env:"SUMMARY_MAX_DATE_RANGE_DAYS"`
	MinDateRangeDays    int  `yaml:"min_date_range_days" env:"SUMMARY_MIN_DATE_RANGE_DAYS"`
	MaxUsers            int  `yaml:"max_users" env:"SUMMARY_MAX_USERS"`
	MaxBranchNameLength int  `yaml:"max_branch_name_length" env:"SUMMARY_MAX_BRANCH_NAME_LENGTH"`
	AllowFutureDates    bool `yaml:"allow_future_dates" env:"SUMMARY_ALLOW_FUTURE_DATES"`

	// TopRepositoriesLimit caps the top-repositories ranking in SummaryStats.
	TopRepositoriesLimit int `yaml:"top_repositories_limit" env:"SUMMARY_TOP_REPOSITORIES_LIMIT"`
}

// PrepareAndValidate fills defaults and rejects nonsensical limits.
func (c *Config) PrepareAndValidate() error {
	if c.MaxRepositories == 0 {
		c.MaxRepositories = defaultMaxRepositories
	}
	if c.MaxDateRangeDays == 0 {
		c.MaxDateRangeDays = defaultMaxDateRangeDays
	}
	if c.MaxUsers == 0 {
		c.MaxUsers = defaultMaxUsers
	}
	if c.MaxBranchNameLength == 0 {
		c.MaxBranchNameLength = defaultMaxBranchNameLength
	}
	if c.TopRepositoriesLimit == 0 {
		c.TopRepositoriesLimit = defaultTopRepositoriesLimit
	}

	if c.MaxRepositories < 0 || c.MaxUsers < 0 || c.MaxBranchNameLength < 0 {
		return errm.New("limits must not be negative")
	}
	if c.MinDateRangeDays < 0 || c.MinDateRangeDays > c.MaxDateRangeDays {
		return errm.New("min_date_range_days must be within [0, max_date_range_days]")
	}
	return nil
}
