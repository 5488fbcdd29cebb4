package domain

import "fmt"

// ProjectConfig holds project-level configuration loaded from .stockroute.yaml.
type ProjectConfig struct {
	CommitPolicy  CommitPolicy `yaml:"commit_policy"            json:"commit_policy,omitempty"`
	Strict        *bool        `yaml:"strict,omitempty"         json:"strict,omitempty"`
	InventoryFile string       `yaml:"inventory_file,omitempty" json:"inventory_file,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{CommitPolicy: CommitImmediate}
}

// IsStrict reports whether input validation is on. Unset means true.
func (c ProjectConfig) IsStrict() bool {
	return c.Strict == nil || *c.Strict
}

// Policy returns the configured commit policy, defaulting to CommitImmediate.
func (c ProjectConfig) Policy() CommitPolicy {
	if c.CommitPolicy == "" {
		return CommitImmediate
	}
	return c.CommitPolicy
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if _, err := ParseCommitPolicy(string(c.CommitPolicy)); err != nil {
		return fmt.Errorf("commit_policy: %w", err)
	}
	return nil
}
