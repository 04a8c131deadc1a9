// Package doctor inspects a campaign config and the output location
// without generating anything.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vibefunder/packgen/internal/campaign"
	"github.com/vibefunder/packgen/internal/ux"
)

// Check prints a diagnostic summary for a loaded (already validated)
// config: per-campaign derived values and whether the output directory is
// writable. It returns an error only for problems that would fail a
// generate run.
func Check(cfg *campaign.Config, outDir string) error {
	fmt.Printf("\n%s%s══ Check: %d campaign(s), pack %q ══%s\n\n",
		ux.Bold, ux.Cyan, len(cfg.Campaigns), cfg.PackName, ux.Reset)

	for _, cp := range cfg.Campaigns {
		ctx := cfg.BuildContext(cp, time.Now())
		fmt.Printf("%s%s%s\n", ux.Bold, cp.Name, ux.Reset)
		fmt.Printf("  budget    $%d (%d × $%d)\n", ctx.Budget, ctx.Backers, ctx.Price)
		fmt.Printf("  start     %s\n", ctx.StartDate.Format("2006-01-02"))
		for i, m := range ctx.Milestones {
			fmt.Printf("  M%d        %-28s due %s (%d%%, %d weeks)\n",
				i+1, m.Name, m.Due.Format("2006-01-02"), m.Percent, m.Weeks)
		}
		fmt.Println()
	}

	if cfg.Platform != nil {
		fmt.Printf("%splatform%s  %s (%s), %d%% fee\n\n",
			ux.Bold, ux.Reset, cfg.Platform.Name, cfg.Platform.Domain, cfg.Platform.FeePercent)
	}

	if err := checkWritable(outDir); err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", outDir, err)
	}
	fmt.Printf("%s✓ output directory %s is writable%s\n\n", ux.Green, outDir, ux.Reset)
	return nil
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".packgen-probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return err
	}
	return os.Remove(probe)
}
