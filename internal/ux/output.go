package ux

import (
	"fmt"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// CampaignHeader prints a timestamped header for one campaign's generation.
func CampaignHeader(index, total int, name string) {
	fmt.Printf("\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	fmt.Printf("%s[%s]%s  %sCampaign %d/%d: %s%s\n",
		Dim, timestamp(), Reset, Bold, index+1, total, name, Reset)
	fmt.Printf("%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// StepDone prints a completed pipeline step.
func StepDone(format string, args ...any) {
	fmt.Printf("%s[%s]%s  %s✓%s %s\n",
		Dim, timestamp(), Reset, Green, Reset, fmt.Sprintf(format, args...))
}

// Warn prints a non-fatal warning.
func Warn(format string, args ...any) {
	fmt.Printf("%s[%s]%s  %s! %s%s\n",
		Dim, timestamp(), Reset, Yellow, fmt.Sprintf(format, args...), Reset)
}

// DegradedDeck reports the deck fallback path being taken.
func DegradedDeck(name string, err error) {
	Warn("deck backend failed for %s, wrote text fallback: %v", name, err)
}

// PartialFailure lists the artifacts that were completed before a fatal
// error so partial progress is observable.
func PartialFailure(written []string) {
	if len(written) == 0 {
		return
	}
	fmt.Printf("\n%sCompleted before failure:%s\n", Bold, Reset)
	for _, p := range written {
		fmt.Printf("  %s\n", p)
	}
}
