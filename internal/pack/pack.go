// Package pack holds the in-memory document pack: an ordered mapping from
// relative output path to rendered content, and the assembler that
// materializes it onto the filesystem.
package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Pack is an ordered collection of rendered documents keyed by relative
// path. Entries are written in insertion order.
type Pack struct {
	paths []string
	files map[string][]byte
}

func New() *Pack {
	return &Pack{files: make(map[string][]byte)}
}

// Add registers content under a relative path. Duplicate, absolute, or
// parent-traversing paths are configuration errors.
func (p *Pack) Add(rel string, content []byte) error {
	if rel == "" {
		return fmt.Errorf("pack: empty path")
	}
	if filepath.IsAbs(rel) {
		return fmt.Errorf("pack: %q: path must be relative", rel)
	}
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("pack: %q: path escapes the output root", rel)
	}
	if _, dup := p.files[clean]; dup {
		return fmt.Errorf("pack: duplicate path %q", clean)
	}
	p.paths = append(p.paths, clean)
	p.files[clean] = content
	return nil
}

// AddString is Add for rendered text.
func (p *Pack) AddString(rel, content string) error {
	return p.Add(rel, []byte(content))
}

// Len returns the number of entries.
func (p *Pack) Len() int {
	return len(p.paths)
}

// Paths returns the entry paths in insertion order.
func (p *Pack) Paths() []string {
	out := make([]string, len(p.paths))
	copy(out, p.paths)
	return out
}

// Write materializes the pack under root, creating root and any
// intermediate directories and overwriting existing files. It returns the
// absolute paths written. On error the paths written before the failure are
// still returned so the caller can report partial progress; nothing is
// rolled back.
func (p *Pack) Write(root string) ([]string, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating output root %s: %w", root, err)
	}
	var written []string
	for _, rel := range p.paths {
		full := filepath.Join(root, rel)
		if dir := filepath.Dir(full); dir != root {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return written, fmt.Errorf("creating directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(full, p.files[rel], 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", full, err)
		}
		written = append(written, full)
	}
	return written, nil
}
