package ux

import (
	"fmt"

	"github.com/vibefunder/packgen/internal/manifest"
)

// RenderSummary prints the final run summary from the manifest.
func RenderSummary(m *manifest.Manifest) {
	fmt.Printf("\n%sRun:%s      %s\n", Bold, Reset, m.RunID)
	fmt.Printf("%sPack:%s     %s (%d files)\n", Bold, Reset, m.PackRoot, len(m.Files))
	for _, c := range m.Campaigns {
		mode := c.DeckMode
		if c.Degraded {
			mode = fmt.Sprintf("%s%s (degraded)%s", Yellow, c.DeckMode, Reset)
		}
		fmt.Printf("  %s%-24s%s %d files, deck: %s\n", Dim, c.Name, Reset, len(c.Files), mode)
	}
	if m.Archive != "" {
		fmt.Printf("%sArchive:%s  %s\n", Bold, Reset, m.Archive)
	}
	fmt.Println()
}
