package campaign

import (
	"math"
	"strings"
	"time"
)

// DueMilestone is a milestone with its derived due date.
type DueMilestone struct {
	Name     string
	Weeks    int
	Percent  int
	Due      time.Time
	Details  []string
	Evidence []string
}

// Context is the immutable input to every template for one campaign.
// Built once per campaign, never mutated after creation. GeneratedAt is
// passed in by the caller; templates never read the clock themselves.
type Context struct {
	Name        string
	DisplayName string
	Blurb       string
	Audience    string
	Hook        string
	Company     string
	Venue       string

	Price            int
	Backers          int
	Budget           int
	PremiumPrice     int
	OnPremPrice      int
	MaintenancePrice int

	StartDate  time.Time
	Milestones []DueMilestone
	FinalDue   time.Time

	Capabilities []string
	Metrics      []string
	AddOns       []string
	Acceptance   []string
	Integrations []string

	GeneratedAt time.Time
}

// DueDates computes cumulative milestone end dates from a start date:
// each milestone is due N weeks after the previous one's due date.
func DueDates(start time.Time, weeks []int) []time.Time {
	dues := make([]time.Time, len(weeks))
	prev := start
	for i, w := range weeks {
		prev = prev.AddDate(0, 0, 7*w)
		dues[i] = prev
	}
	return dues
}

// Budget is the total escrow target: unit price times backer count.
func Budget(price, backers int) int {
	return price * backers
}

// RatioPrice derives a tiered price as a fixed-ratio multiple of the base
// price, rounded to the nearest whole currency unit.
func RatioPrice(price int, ratio float64) int {
	return int(math.Round(float64(price) * ratio))
}

// BuildContext derives all computed values for one campaign and binds them,
// together with the pack-level settings, into a rendering Context.
func (c *Config) BuildContext(cp Campaign, generatedAt time.Time) Context {
	start, _ := time.Parse("2006-01-02", c.StartDate) // validated in Validate

	weeks := make([]int, len(c.Milestones))
	for i, m := range c.Milestones {
		weeks[i] = m.Weeks
	}
	dues := DueDates(start, weeks)

	ms := make([]DueMilestone, len(c.Milestones))
	for i, m := range c.Milestones {
		ms[i] = DueMilestone{
			Name:     m.Name,
			Weeks:    m.Weeks,
			Percent:  m.Percent,
			Due:      dues[i],
			Details:  m.Details,
			Evidence: m.Evidence,
		}
	}

	return Context{
		Name:        cp.Name,
		DisplayName: strings.ReplaceAll(cp.Name, "_", " "),
		Blurb:       cp.Blurb,
		Audience:    cp.Audience,
		Hook:        cp.Hook,
		Company:     c.Company,
		Venue:       c.Venue,

		Price:            cp.Price,
		Backers:          cp.Backers,
		Budget:           Budget(cp.Price, cp.Backers),
		PremiumPrice:     RatioPrice(cp.Price, 1.25),
		OnPremPrice:      RatioPrice(cp.Price, 0.5),
		MaintenancePrice: c.MaintenancePrice,

		StartDate:  start,
		Milestones: ms,
		FinalDue:   dues[len(dues)-1],

		Capabilities: cp.Capabilities,
		Metrics:      cp.Metrics,
		AddOns:       cp.AddOns,
		Acceptance:   cp.Acceptance,
		Integrations: cp.Integrations,

		GeneratedAt: generatedAt,
	}
}
