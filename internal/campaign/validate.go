package campaign

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Masterminds/semver/v3"
)

var safeNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// schemaRange is the config schema range this build understands. Configs
// written for a future major version are rejected up front rather than
// rendered with missing fields.
var schemaRange = mustConstraint(">= 1.0, < 2.0")

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Schema == "" {
		return fmt.Errorf("config: 'schema' is required (e.g. \"1.0\")")
	}
	v, err := semver.NewVersion(cfg.Schema)
	if err != nil {
		return fmt.Errorf("config: 'schema' %q is not a valid version: %w", cfg.Schema, err)
	}
	if !schemaRange.Check(v) {
		return fmt.Errorf("config: schema %s is outside the supported range %s", cfg.Schema, schemaRange)
	}

	if cfg.PackName == "" {
		cfg.PackName = "campaign_packs"
	}
	if cfg.Company == "" {
		cfg.Company = "[Your Company]"
	}
	if cfg.MaintenancePrice == 0 {
		cfg.MaintenancePrice = 5000
	}

	if cfg.StartDate == "" {
		return fmt.Errorf("config: 'start-date' is required")
	}
	if _, err := time.Parse("2006-01-02", cfg.StartDate); err != nil {
		return fmt.Errorf("config: 'start-date' %q is not a YYYY-MM-DD date", cfg.StartDate)
	}

	if len(cfg.Milestones) == 0 {
		return fmt.Errorf("config: at least one milestone is required")
	}
	pct := 0
	seenMilestones := make(map[string]bool)
	for i, m := range cfg.Milestones {
		if m.Name == "" {
			return fmt.Errorf("config: milestone %d: 'name' is required", i+1)
		}
		if seenMilestones[m.Name] {
			return fmt.Errorf("config: duplicate milestone name %q", m.Name)
		}
		seenMilestones[m.Name] = true
		if m.Weeks <= 0 {
			return fmt.Errorf("config: milestone %q: 'weeks' must be positive", m.Name)
		}
		if m.Percent <= 0 {
			return fmt.Errorf("config: milestone %q: 'percent' must be positive", m.Name)
		}
		pct += m.Percent
	}
	if pct != 100 {
		return fmt.Errorf("config: milestone percents must sum to 100, got %d", pct)
	}

	if len(cfg.Campaigns) == 0 {
		return fmt.Errorf("config: at least one campaign is required")
	}
	seen := make(map[string]bool)
	for i := range cfg.Campaigns {
		cp := &cfg.Campaigns[i]
		if cp.Name == "" {
			return fmt.Errorf("config: campaign %d: 'name' is required", i+1)
		}
		if !safeNameRe.MatchString(cp.Name) {
			return fmt.Errorf("config: campaign %q: name must match %s (it becomes a directory name)", cp.Name, safeNameRe)
		}
		if seen[cp.Name] {
			return fmt.Errorf("config: duplicate campaign name %q", cp.Name)
		}
		seen[cp.Name] = true
		if cp.Blurb == "" {
			return fmt.Errorf("config: campaign %q: 'blurb' is required", cp.Name)
		}
		if cp.Audience == "" {
			return fmt.Errorf("config: campaign %q: 'audience' is required", cp.Name)
		}
		if cp.Price <= 0 {
			return fmt.Errorf("config: campaign %q: 'price' must be positive", cp.Name)
		}
		if cp.Backers <= 0 {
			return fmt.Errorf("config: campaign %q: 'backers' must be positive", cp.Name)
		}
		if len(cp.Capabilities) == 0 {
			return fmt.Errorf("config: campaign %q: at least one capability is required", cp.Name)
		}
		if cp.Hook == "" {
			cp.Hook = fmt.Sprintf("We have a working prototype and can demo on sanitized data. Your top three workflows will shape v1 for %s.", cp.Name)
		}
	}

	if p := cfg.Platform; p != nil {
		if p.Name == "" {
			return fmt.Errorf("config: platform: 'name' is required")
		}
		if p.Domain == "" {
			return fmt.Errorf("config: platform: 'domain' is required")
		}
		if p.FeePercent <= 0 || p.FeePercent >= 100 {
			return fmt.Errorf("config: platform: 'fee-percent' must be between 1 and 99")
		}
		if p.Tagline == "" {
			p.Tagline = "Ship the vibe. Not the pitch deck."
		}
	}

	return nil
}
