package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibefunder/packgen/internal/campaign"
)

func testContext(t *testing.T) campaign.Context {
	t.Helper()
	cfg := &campaign.Config{
		Schema:    "1.0",
		Company:   "Acme Corp",
		Venue:     "Massachusetts, USA",
		StartDate: "2025-08-11",
		Milestones: []campaign.Milestone{
			{Name: "Security & Identity", Weeks: 4, Percent: 30, Details: []string{"SSO (SAML/OIDC)"}, Evidence: []string{"pen test summary"}},
			{Name: "Reliability & Data", Weeks: 6, Percent: 40, Details: []string{"SLOs & alerting"}},
			{Name: "Compliance & Enterprise Fit", Weeks: 5, Percent: 30, Details: []string{"DPA"}},
		},
		Campaigns: []campaign.Campaign{{
			Name:         "ApplicationAI",
			Blurb:        "Turn a company URL into a complete application package.",
			Audience:     "VC firms & innovation programs",
			Price:        20000,
			Backers:      5,
			Capabilities: []string{"URL to profile with citations", "Submitter copilot"},
			Metrics:      []string{"Under 10 minutes to first qualified application"},
			AddOns:       []string{"VPC/on-prem deploy"},
			Acceptance:   []string{"95% required field fill rate"},
			Integrations: []string{"Affinity, HubSpot, Salesforce"},
		}},
	}
	require.NoError(t, campaign.Validate(cfg))
	return cfg.BuildContext(cfg.Campaigns[0], time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
}

func TestRender_Deterministic(t *testing.T) {
	ctx := testContext(t)
	for _, d := range CampaignDocs {
		first, err := Render(d.Template, ctx)
		require.NoError(t, err, d.Template)
		second, err := Render(d.Template, ctx)
		require.NoError(t, err, d.Template)
		assert.Equal(t, first, second, "template %s must render identically", d.Template)
		assert.NotEmpty(t, first, d.Template)
	}
}

func TestRender_OnePagerContent(t *testing.T) {
	ctx := testContext(t)
	out, err := Render("onepager.md", ctx)
	require.NoError(t, err)

	assert.Contains(t, out, "# ApplicationAI — Charter Backer Invitation")
	assert.Contains(t, out, "**Date:** August 1, 2025")
	assert.Contains(t, out, "$20,000")
	assert.Contains(t, out, "$100,000")
	assert.Contains(t, out, "Security & Identity (30%) — due 2025-09-08")
	assert.Contains(t, out, "Compliance & Enterprise Fit (30%) — due 2025-11-24")
}

func TestRender_PricingUsesRatioTiers(t *testing.T) {
	out, err := Render("pricing_licensing.md", testContext(t))
	require.NoError(t, err)
	assert.Contains(t, out, "$25,000")
	assert.Contains(t, out, "$10,000")
}

func TestRender_OutreachEmailKeepsFirstNamePlaceholder(t *testing.T) {
	out, err := Render("outreach_email.txt", testContext(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Hi {FirstName},")
	assert.Contains(t, out, "Acme Corp")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("nonexistent.md", testContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestRender_MissingFieldFailsFast(t *testing.T) {
	// A context without the fields the template needs must error, not
	// silently render blanks.
	_, err := Render("onepager.md", struct{ Unrelated string }{})
	require.Error(t, err)
}

func TestRender_ComparisonTable(t *testing.T) {
	ctx := testContext(t)
	out, err := Render("comparison.md", Comparison{
		Campaigns:   []campaign.Context{ctx, ctx},
		GeneratedAt: ctx.GeneratedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "| ApplicationAI |"))
}

func TestRender_LandingPage(t *testing.T) {
	site := Site{
		Platform:    campaign.Platform{Name: "VibeFunder", Domain: "vibefunder.ai", Tagline: "Ship the vibe. Not the pitch deck.", FeePercent: 5},
		GeneratedAt: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	html, err := Render("landing.html", site)
	require.NoError(t, err)
	assert.Contains(t, html, "<title>VibeFunder — Ship the vibe. Not the pitch deck.</title>")
	assert.Contains(t, html, `<span class="dot">.ai</span>`)
	assert.Contains(t, html, "5% platform fee")
	assert.Contains(t, html, "© 2025 VibeFunder")

	css, err := Render("landing.css", site)
	require.NoError(t, err)
	assert.Contains(t, css, ".container{max-width:1100px")
}

func TestNames_CoversCampaignDocs(t *testing.T) {
	names := Names()
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	for _, d := range CampaignDocs {
		assert.True(t, set[d.Template], "template %s not registered", d.Template)
	}
}

func TestTargetBackersCSV_HeaderOnly(t *testing.T) {
	out := TargetBackersCSV()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1, "CSV template must contain exactly the header row")
	assert.Equal(t, "Firm,Contact Name,Role,Email,Warm Intro From,Status,Notes", lines[0])
}

func TestOpenAPIStub_IsValidJSON(t *testing.T) {
	out, err := OpenAPIStub(campaign.Platform{Name: "VibeFunder", Domain: "vibefunder.ai", FeePercent: 5})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	servers := doc["servers"].([]any)
	assert.Equal(t, map[string]any{"url": "https://api.vibefunder.ai"}, servers[0])

	paths := doc["paths"].(map[string]any)
	for _, p := range []string{"/campaigns", "/pledges", "/milestones/{id}/accept"} {
		assert.Contains(t, paths, p)
	}
}

func TestComma(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		20000:    "20,000",
		100000:   "100,000",
		1234567:  "1,234,567",
		-25000:   "-25,000",
	}
	for in, want := range cases {
		assert.Equal(t, want, comma(in), "comma(%d)", in)
	}
}
