package model

// Installation is an authorization grant scoping API access to a specific
// account's repositories, distinct from the personal OAuth token.
type Installation struct {
	ID           int64  `yaml:"id" json:"id"`
	AccountLogin string `yaml:"account_login" json:"account_login"`
	Token        string `yaml:"token" json:"-"`
}

// OAuthBucket is the auth-group key for repositories served by the personal
// OAuth token instead of an installation.
const OAuthBucket = "oauth"
