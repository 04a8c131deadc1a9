package campaign

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Milestone is one escrow milestone: a named block of work with a duration
// and a payout percentage released on acceptance.
type Milestone struct {
	Name     string   `yaml:"name"`
	Weeks    int      `yaml:"weeks"`
	Percent  int      `yaml:"percent"`
	Details  []string `yaml:"details"`
	Evidence []string `yaml:"evidence"`
}

// Campaign describes one charter campaign: the product pitched to backers
// and the material that varies between pitches.
type Campaign struct {
	Name         string   `yaml:"name"`
	Blurb        string   `yaml:"blurb"`
	Audience     string   `yaml:"audience"`
	Price        int      `yaml:"price"`
	Backers      int      `yaml:"backers"`
	Hook         string   `yaml:"hook"`
	Capabilities []string `yaml:"capabilities"`
	Metrics      []string `yaml:"metrics"`
	AddOns       []string `yaml:"add-ons"`
	Acceptance   []string `yaml:"acceptance"`
	Integrations []string `yaml:"integrations"`
}

// Platform describes the marketplace the campaigns launch on. Optional;
// when present the pipeline also emits a landing page bundle, a platform
// planning doc, and an OpenAPI stub.
type Platform struct {
	Name       string `yaml:"name"`
	Domain     string `yaml:"domain"`
	Tagline    string `yaml:"tagline"`
	FeePercent int    `yaml:"fee-percent"`
}

type Config struct {
	Schema           string      `yaml:"schema"`
	PackName         string      `yaml:"pack-name"`
	Company          string      `yaml:"company"`
	Venue            string      `yaml:"venue"`
	StartDate        string      `yaml:"start-date"`
	MaintenancePrice int         `yaml:"maintenance-price"`
	Milestones       []Milestone `yaml:"milestones"`
	Campaigns        []Campaign  `yaml:"campaigns"`
	Platform         *Platform   `yaml:"platform"`
}

// Load reads a YAML campaign config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CampaignIndex returns the index of the named campaign, or -1 if not found.
func (c *Config) CampaignIndex(name string) int {
	for i, cp := range c.Campaigns {
		if cp.Name == name {
			return i
		}
	}
	return -1
}
