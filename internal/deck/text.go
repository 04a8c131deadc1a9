package deck

import (
	"fmt"
	"os"
	"strings"
)

// textBackend renders the deck as Markdown: one heading, bullet list, and
// notes block per slide, slides separated by a horizontal rule.
type textBackend struct{}

func (t *textBackend) Name() string    { return "text" }
func (t *textBackend) Available() bool { return true }
func (t *textBackend) Ext() string     { return ".md" }

func (t *textBackend) Write(slides []Slide, path string) error {
	var b strings.Builder
	for _, s := range slides {
		fmt.Fprintf(&b, "# %s\n\n", s.Title)
		for _, bullet := range s.Bullets {
			fmt.Fprintf(&b, "- %s\n", bullet)
		}
		fmt.Fprintf(&b, "\n> Notes: %s\n\n---\n\n", s.Notes)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing text deck %s: %w", path, err)
	}
	return nil
}
