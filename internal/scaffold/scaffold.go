package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vibefunder/packgen/internal/ux"
)

var configTemplate = `schema: "1.0"
pack-name: ApplicationAI_Charter_Pack
company: "[Your Company]"
venue: Massachusetts, USA
start-date: 2025-08-11
maintenance-price: 5000

milestones:
  - name: Security & Identity
    weeks: 4
    percent: 30
    details:
      - SSO (SAML/OIDC), RBAC/ABAC, audit logging.
      - SBOM; SCA/DAST; dependency pinning; secrets scanning.
      - Initial pen test & remediation plan.
    evidence:
      - SSO/RBAC tests
      - pen test summary
      - SBOM/SCA reports
  - name: Reliability & Data
    weeks: 6
    percent: 40
    details:
      - SLOs & alerting, error budgets; runbooks.
      - Backups/restore drill (RTO < 4h, RPO < 24h).
      - Rate limits; usage metering.
      - Admin console & data export (CSV/Parquet).
    evidence:
      - dashboards
      - restore drill video
      - rate limit tests
      - export samples
  - name: Compliance & Enterprise Fit
    weeks: 5
    percent: 30
    details:
      - Security questionnaire pack (SIG Lite/CAIQ mapping), DPA, data retention policy.
      - Deployment guides (SaaS/VPC/on-prem), hardening checklist.
      - "Badges: Security-Ready, SSO-Ready, PII-Safe."
    evidence:
      - completed questionnaires
      - DPA ready
      - guides uploaded

campaigns:
  - name: ApplicationAI
    blurb: >-
      Turn a company URL or brief into a complete, evaluable application:
      auto-populate forms, chat with the submitter to fill gaps, then enrich
      with market/competitor analysis and generate standardized go/no-go
      summaries for VC dealflow, grant competitions, and RFP triage.
    audience: VC firms, competition managers, procurement triage teams
    price: 20000
    backers: 5
    capabilities:
      - URL → profile (team, traction, docs) with citations.
      - "Submitter copilot: secure link to resolve missing fields."
      - "Enrichment: market sizing, comps, risks; explainability cards."
      - Auto-scored rubric + human review workflow; CRM/ATS export.
      - Audit trail; data export; admin console.
    metrics:
      - Time-to-first qualified application < 10 minutes.
      - Reviewer hours saved per 100 apps > 40%.
      - AI pre-score vs. committee correlation ≥ 0.75 (Spearman).
      - Zero data-leakage incidents; P0 bugs ≤ 1/mo.
    add-ons:
      - Custom retrieval adapter hardening.
      - Advanced de-duplication & entity resolution.
      - Custom rubric builder & bias testing.
      - VPC/on-prem deploy & SSO/SCIM.
    acceptance:
      - URL→Application pipeline completes on 50-sample test set with >95% required field fill rate.
      - Submitter chat achieves >80% completion without human assist on test cohort.
      - Enrichment cards show sources with ≥90% resolvable citations.
      - CRM export validated (Affinity + HubSpot).
    integrations:
      - "Sources: public web, customer-supplied data."
      - "Destinations: Affinity, HubSpot, Salesforce (basic), Notion export."
      - "Auth: Okta, Azure AD."

platform:
  name: VibeFunder
  domain: vibefunder.ai
  tagline: Ship the vibe. Not the pitch deck.
  fee-percent: 5
`

// Init writes an example campaigns.yaml into targetDir.
func Init(targetDir string) error {
	configPath := filepath.Join(targetDir, "campaigns.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("campaigns.yaml already exists in %s", targetDir)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing campaigns.yaml: %w", err)
	}

	fmt.Printf("\n%s%s✓ Created campaigns.yaml%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Edit %scampaigns.yaml%s to describe your campaigns\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Run %spackgen check%s to validate the config\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Run %spackgen generate%s to build the pack\n\n", ux.Cyan, ux.Reset)

	return nil
}
