// Package deck generates the charter briefing slide deck.
//
// Two backends exist: a rich PPTX writer and a plain-text Markdown writer.
// The backend is chosen once up front; if the rich backend fails mid-write
// the generator falls back to the text rendering and reports degraded mode
// instead of failing the run. This is the only place in the pipeline that
// recovers from its own errors.
package deck

import (
	"fmt"
	"os"
)

// Slide is one slide: a title, its bullet list, and speaker notes.
type Slide struct {
	Title   string
	Bullets []string
	Notes   string
}

// Backend writes a slide deck to a concrete file format.
type Backend interface {
	// Name identifies the backend ("pptx" or "text").
	Name() string
	// Available reports whether the backend can be used in this build.
	Available() bool
	// Ext is the file extension including the dot.
	Ext() string
	// Write renders the slides to path.
	Write(slides []Slide, path string) error
}

// Result reports which mode a deck generation actually used.
type Result struct {
	Mode     string // backend name that produced the file
	Path     string
	Degraded bool  // true when the requested backend failed and text took over
	Err      error // the backend error that triggered the fallback
}

// Select picks a backend by mode: "auto" and "pptx" select the rich
// backend when available, "text" forces the plain-text rendering.
func Select(mode string) (Backend, error) {
	switch mode {
	case "auto":
		if p := (&pptxBackend{}); p.Available() {
			return p, nil
		}
		return &textBackend{}, nil
	case "pptx":
		return &pptxBackend{}, nil
	case "text":
		return &textBackend{}, nil
	default:
		return nil, fmt.Errorf("deck: unknown mode %q (want auto, pptx, or text)", mode)
	}
}

// Generate writes the deck at basePath plus the backend's extension. If the
// requested backend errors, the text fallback is written to basePath+".md"
// and the result reports degraded mode; Generate itself only fails when the
// fallback cannot be written either.
func Generate(slides []Slide, basePath string, b Backend) (Result, error) {
	if len(slides) == 0 {
		return Result{}, fmt.Errorf("deck: no slides to render")
	}

	path := basePath + b.Ext()
	err := b.Write(slides, path)
	if err == nil {
		return Result{Mode: b.Name(), Path: path}, nil
	}
	if b.Name() == "text" {
		return Result{}, err
	}

	// Rich backend failed: clean up any partial file and degrade to text.
	os.Remove(path)
	fallback := &textBackend{}
	fbPath := basePath + fallback.Ext()
	if fbErr := fallback.Write(slides, fbPath); fbErr != nil {
		return Result{}, fmt.Errorf("deck: %s backend failed (%v) and text fallback failed: %w", b.Name(), err, fbErr)
	}
	return Result{Mode: fallback.Name(), Path: fbPath, Degraded: true, Err: err}, nil
}
