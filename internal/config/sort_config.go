package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SortConfig is the persisted scoring configuration for the email sorter.
// It is stored as sort_config.json; fields absent from the document fall
// back to the documented defaults, and a missing file yields all defaults.
type SortConfig struct {
	DeleteKeywords []string `json:"delete_keywords"`
	DeleteSenders  []string `json:"delete_senders"`
	DeleteSubjects []string `json:"delete_subjects"`

	SummarizeMaxLength int      `json:"summarize_max_length"`
	SummarizeKeywords  []string `json:"summarize_keywords"`

	KeepKeywords []string `json:"keep_keywords"`
	KeepSenders  []string `json:"keep_senders"`
	KeepSubjects []string `json:"keep_subjects"`

	// Whitelist entries match senders as an exact address, an "@domain"
	// suffix, or a "prefix@" prefix.
	Whitelist []string `json:"whitelist"`

	RecentThresholdDays int64 `json:"recent_threshold_days"`
	OldThresholdDays    int64 `json:"old_threshold_days"`

	SmallEmailThreshold int `json:"small_email_threshold"`
	LargeEmailThreshold int `json:"large_email_threshold"`

	KeepWithAttachments bool `json:"keep_with_attachments"`

	TypeWeights map[string]int `json:"type_weights"`
}

// DefaultSortConfig returns the built-in scoring configuration.
func DefaultSortConfig() *SortConfig {
	return &SortConfig{
		DeleteKeywords: []string{
			"newsletter", "bulletin", "digest", "promotion", "offer",
			"coupon", "sale", "unsubscribe", "marketing", "advertisement",
		},
		DeleteSenders:  []string{},
		DeleteSubjects: []string{},

		SummarizeMaxLength: 5000,
		SummarizeKeywords:  []string{},

		KeepKeywords: []string{
			"contract", "invoice", "legal", "urgent", "important", "confidential",
		},
		KeepSenders:  []string{},
		KeepSubjects: []string{},

		Whitelist: []string{},

		RecentThresholdDays: 30,
		OldThresholdDays:    365,

		SmallEmailThreshold: 500,
		LargeEmailThreshold: 10000,

		KeepWithAttachments: true,

		TypeWeights: map[string]int{
			"newsletter":   -2,
			"mailing_list": -1,
			"group":        0,
			"direct":       1,
			"unknown":      0,
		},
	}
}

// LoadSortConfig reads a sort configuration from path. A missing file is not
// an error and yields the defaults; an unreadable or malformed file is.
func LoadSortConfig(path string) (*SortConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSortConfig(), nil
		}
		return nil, fmt.Errorf("failed to read sort config: %w", err)
	}

	cfg := DefaultSortConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sort config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the sort configuration to path as pretty-printed JSON,
// creating parent directories as needed.
func (c *SortConfig) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sort config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write sort config: %w", err)
	}
	return nil
}

// SortOverride carries optional per-run overrides for SortConfig fields.
// Nil fields leave the underlying value untouched.
type SortOverride struct {
	DeleteKeywords      []string
	DeleteSenders       []string
	KeepKeywords        []string
	KeepSenders         []string
	Whitelist           []string
	SummarizeMaxLength  *int
	RecentThresholdDays *int64
	OldThresholdDays    *int64
	SmallEmailThreshold *int
	LargeEmailThreshold *int
	KeepWithAttachments *bool
}

// Merge resolves a SortConfig against an override. Precedence, highest
// first: override field > loaded configuration > built-in default. The
// receiver is not modified.
func (c *SortConfig) Merge(o SortOverride) *SortConfig {
	merged := *c
	if o.DeleteKeywords != nil {
		merged.DeleteKeywords = o.DeleteKeywords
	}
	if o.DeleteSenders != nil {
		merged.DeleteSenders = o.DeleteSenders
	}
	if o.KeepKeywords != nil {
		merged.KeepKeywords = o.KeepKeywords
	}
	if o.KeepSenders != nil {
		merged.KeepSenders = o.KeepSenders
	}
	if o.Whitelist != nil {
		merged.Whitelist = o.Whitelist
	}
	if o.SummarizeMaxLength != nil {
		merged.SummarizeMaxLength = *o.SummarizeMaxLength
	}
	if o.RecentThresholdDays != nil {
		merged.RecentThresholdDays = *o.RecentThresholdDays
	}
	if o.OldThresholdDays != nil {
		merged.OldThresholdDays = *o.OldThresholdDays
	}
	if o.SmallEmailThreshold != nil {
		merged.SmallEmailThreshold = *o.SmallEmailThreshold
	}
	if o.LargeEmailThreshold != nil {
		merged.LargeEmailThreshold = *o.LargeEmailThreshold
	}
	if o.KeepWithAttachments != nil {
		merged.KeepWithAttachments = *o.KeepWithAttachments
	}
	return &merged
}

// OverrideFromConfig builds a SortOverride from the sort.overrides section
// of the application configuration. Only keys the operator set explicitly
// are carried into the override.
func OverrideFromConfig(cfg *Config) SortOverride {
	var o SortOverride
	if cfg.IsSet("sort.overrides.delete_keywords") {
		o.DeleteKeywords = cfg.GetStringSlice("sort.overrides.delete_keywords")
	}
	if cfg.IsSet("sort.overrides.delete_senders") {
		o.DeleteSenders = cfg.GetStringSlice("sort.overrides.delete_senders")
	}
	if cfg.IsSet("sort.overrides.keep_keywords") {
		o.KeepKeywords = cfg.GetStringSlice("sort.overrides.keep_keywords")
	}
	if cfg.IsSet("sort.overrides.keep_senders") {
		o.KeepSenders = cfg.GetStringSlice("sort.overrides.keep_senders")
	}
	if cfg.IsSet("sort.overrides.whitelist") {
		o.Whitelist = cfg.GetStringSlice("sort.overrides.whitelist")
	}
	if cfg.IsSet("sort.overrides.summarize_max_length") {
		n := cfg.GetInt("sort.overrides.summarize_max_length")
		o.SummarizeMaxLength = &n
	}
	if cfg.IsSet("sort.overrides.recent_threshold_days") {
		n := int64(cfg.GetInt("sort.overrides.recent_threshold_days"))
		o.RecentThresholdDays = &n
	}
	if cfg.IsSet("sort.overrides.old_threshold_days") {
		n := int64(cfg.GetInt("sort.overrides.old_threshold_days"))
		o.OldThresholdDays = &n
	}
	if cfg.IsSet("sort.overrides.small_email_threshold") {
		n := cfg.GetInt("sort.overrides.small_email_threshold")
		o.SmallEmailThreshold = &n
	}
	if cfg.IsSet("sort.overrides.large_email_threshold") {
		n := cfg.GetInt("sort.overrides.large_email_threshold")
		o.LargeEmailThreshold = &n
	}
	if cfg.IsSet("sort.overrides.keep_with_attachments") {
		b := cfg.GetBool("sort.overrides.keep_with_attachments")
		o.KeepWithAttachments = &b
	}
	return o
}
