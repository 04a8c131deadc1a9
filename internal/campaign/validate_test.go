package campaign

import (
	"strings"
	"testing"
)

func TestValidate_SchemaRequired(t *testing.T) {
	cfg := testConfig()
	cfg.Schema = ""
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'schema' is required") {
		t.Fatalf("expected schema required error, got %v", err)
	}
}

func TestValidate_SchemaOutsideRange(t *testing.T) {
	cfg := testConfig()
	cfg.Schema = "2.0"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "outside the supported range") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_SchemaNotAVersion(t *testing.T) {
	cfg := testConfig()
	cfg.Schema = "latest"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "not a valid version") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_StartDateRequired(t *testing.T) {
	cfg := testConfig()
	cfg.StartDate = ""
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'start-date' is required") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_StartDateFormat(t *testing.T) {
	cfg := testConfig()
	cfg.StartDate = "11/08/2025"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "YYYY-MM-DD") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_MilestonePercentsMustSumTo100(t *testing.T) {
	cfg := testConfig()
	cfg.Milestones[2].Percent = 20
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "sum to 100") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_MilestoneWeeksPositive(t *testing.T) {
	cfg := testConfig()
	cfg.Milestones[0].Weeks = 0
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'weeks' must be positive") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_DuplicateMilestoneNames(t *testing.T) {
	cfg := testConfig()
	cfg.Milestones[1].Name = cfg.Milestones[0].Name
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "duplicate milestone") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_DuplicateCampaignNames(t *testing.T) {
	cfg := testConfig()
	cfg.Campaigns = append(cfg.Campaigns, cfg.Campaigns[0])
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "duplicate campaign") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_CampaignNameMustBePathSafe(t *testing.T) {
	cfg := testConfig()
	cfg.Campaigns[0].Name = "bad/name"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "directory name") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_PriceAndBackersPositive(t *testing.T) {
	cfg := testConfig()
	cfg.Campaigns[0].Price = 0
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'price' must be positive") {
		t.Fatalf("got %v", err)
	}

	cfg = testConfig()
	cfg.Campaigns[0].Backers = -1
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'backers' must be positive") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_SetsDefaults(t *testing.T) {
	cfg := testConfig()
	cfg.PackName = ""
	cfg.Company = ""
	cfg.MaintenancePrice = 0
	cfg.Campaigns[0].Hook = ""
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.PackName != "campaign_packs" {
		t.Fatalf("pack-name default not applied: %q", cfg.PackName)
	}
	if cfg.Company != "[Your Company]" {
		t.Fatalf("company default not applied: %q", cfg.Company)
	}
	if cfg.MaintenancePrice != 5000 {
		t.Fatalf("maintenance-price default not applied: %d", cfg.MaintenancePrice)
	}
	if !strings.Contains(cfg.Campaigns[0].Hook, "ApplicationAI") {
		t.Fatalf("hook default not applied: %q", cfg.Campaigns[0].Hook)
	}
}

func TestValidate_PlatformFeeRange(t *testing.T) {
	cfg := testConfig()
	cfg.Platform = &Platform{Name: "VibeFunder", Domain: "vibefunder.ai", FeePercent: 100}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "fee-percent") {
		t.Fatalf("got %v", err)
	}
}
