package campaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDueDates_CumulativeWeeks(t *testing.T) {
	dues := DueDates(date("2025-08-11"), []int{4, 6, 5})
	require.Len(t, dues, 3)
	assert.Equal(t, date("2025-09-08"), dues[0])
	assert.Equal(t, date("2025-10-20"), dues[1])
	assert.Equal(t, date("2025-11-24"), dues[2])
}

func TestDueDates_Empty(t *testing.T) {
	assert.Empty(t, DueDates(date("2025-08-11"), nil))
}

func TestBudget(t *testing.T) {
	assert.Equal(t, 100000, Budget(20000, 5))
}

func TestRatioPrice(t *testing.T) {
	assert.Equal(t, 25000, RatioPrice(20000, 1.25))
	assert.Equal(t, 10000, RatioPrice(20000, 0.5))
	// rounds to the nearest unit, not truncates
	assert.Equal(t, 13, RatioPrice(25, 0.5))
}

func testConfig() *Config {
	return &Config{
		Schema:    "1.0",
		PackName:  "test_pack",
		Company:   "Acme Corp",
		Venue:     "Massachusetts, USA",
		StartDate: "2025-08-11",
		Milestones: []Milestone{
			{Name: "Security & Identity", Weeks: 4, Percent: 30, Details: []string{"SSO"}, Evidence: []string{"pen test summary"}},
			{Name: "Reliability & Data", Weeks: 6, Percent: 40, Details: []string{"SLOs"}},
			{Name: "Compliance & Enterprise Fit", Weeks: 5, Percent: 30, Details: []string{"DPA"}},
		},
		Campaigns: []Campaign{{
			Name:         "ApplicationAI",
			Blurb:        "Turn a URL into an evaluable application.",
			Audience:     "VC firms",
			Price:        20000,
			Backers:      5,
			Capabilities: []string{"URL to profile", "Submitter copilot"},
			Metrics:      []string{"Under 10 minutes to qualified application"},
			AddOns:       []string{"VPC deploy"},
			Acceptance:   []string{"95% field fill rate"},
			Integrations: []string{"Affinity, HubSpot"},
		}},
	}
}

func TestBuildContext_DerivedValues(t *testing.T) {
	cfg := testConfig()
	require.NoError(t, Validate(cfg))

	generated := date("2025-08-01")
	ctx := cfg.BuildContext(cfg.Campaigns[0], generated)

	assert.Equal(t, "ApplicationAI", ctx.Name)
	assert.Equal(t, 100000, ctx.Budget)
	assert.Equal(t, 25000, ctx.PremiumPrice)
	assert.Equal(t, 10000, ctx.OnPremPrice)
	assert.Equal(t, 5000, ctx.MaintenancePrice)
	assert.Equal(t, generated, ctx.GeneratedAt)

	require.Len(t, ctx.Milestones, 3)
	assert.Equal(t, date("2025-09-08"), ctx.Milestones[0].Due)
	assert.Equal(t, date("2025-10-20"), ctx.Milestones[1].Due)
	assert.Equal(t, date("2025-11-24"), ctx.Milestones[2].Due)
	assert.Equal(t, date("2025-11-24"), ctx.FinalDue)
}

func TestBuildContext_DisplayNameReplacesUnderscores(t *testing.T) {
	cfg := testConfig()
	cfg.Campaigns[0].Name = "Rfp_ProposalHub"
	ctx := cfg.BuildContext(cfg.Campaigns[0], date("2025-08-01"))
	assert.Equal(t, "Rfp ProposalHub", ctx.DisplayName)
}

func TestBuildContext_IsPure(t *testing.T) {
	cfg := testConfig()
	require.NoError(t, Validate(cfg))
	generated := date("2025-08-01")
	a := cfg.BuildContext(cfg.Campaigns[0], generated)
	b := cfg.BuildContext(cfg.Campaigns[0], generated)
	assert.Equal(t, a, b)
}
