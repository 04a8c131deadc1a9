// Package pipeline drives a full generation run: context building, template
// rendering, pack assembly, deck generation, archiving, and the manifest.
// Execution is strictly sequential; any fatal error aborts the run with the
// completed artifacts reported, and only the deck step is allowed to
// recover from its own backend's errors.
package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/vibefunder/packgen/internal/archive"
	"github.com/vibefunder/packgen/internal/campaign"
	"github.com/vibefunder/packgen/internal/deck"
	"github.com/vibefunder/packgen/internal/manifest"
	"github.com/vibefunder/packgen/internal/pack"
	"github.com/vibefunder/packgen/internal/render"
	"github.com/vibefunder/packgen/internal/ux"
)

// Options control one run.
type Options struct {
	OutDir      string
	DeckMode    string // auto, pptx, or text
	Only        string // restrict to a single named campaign
	NoArchive   bool
	GeneratedAt time.Time // zero means time.Now()
	Quiet       bool      // suppress progress output (tests)
}

// Result is the outcome of a successful run.
type Result struct {
	PackRoot     string
	ArchivePath  string
	ManifestPath string
	Manifest     *manifest.Manifest
}

// Run generates every campaign pack described by cfg under
// opts.OutDir/<pack-name>, then archives the pack root. The archive is
// built from the files on disk under the root at archiving time, so stray
// files from earlier runs into the same root are included; callers wanting
// a pristine archive should use a clean output directory.
func Run(cfg *campaign.Config, opts Options) (*Result, error) {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}
	if opts.DeckMode == "" {
		opts.DeckMode = "auto"
	}
	backend, err := deck.Select(opts.DeckMode)
	if err != nil {
		return nil, err
	}

	campaigns := cfg.Campaigns
	if opts.Only != "" {
		idx := cfg.CampaignIndex(opts.Only)
		if idx < 0 {
			return nil, fmt.Errorf("no campaign named %q in config", opts.Only)
		}
		campaigns = cfg.Campaigns[idx : idx+1]
	}

	root := filepath.Join(opts.OutDir, cfg.PackName)
	m := manifest.New(opts.GeneratedAt, root)

	var contexts []campaign.Context
	for i, cp := range campaigns {
		if !opts.Quiet {
			ux.CampaignHeader(i, len(campaigns), cp.Name)
		}
		ctx := cfg.BuildContext(cp, opts.GeneratedAt)
		contexts = append(contexts, ctx)

		p := pack.New()
		for _, d := range render.CampaignDocs {
			content, err := render.Render(d.Template, ctx)
			if err != nil {
				return nil, err
			}
			if err := p.AddString(filepath.Join(cp.Name, d.Filename), content); err != nil {
				return nil, err
			}
		}
		if err := p.AddString(filepath.Join(cp.Name, "Target_Backers_Template.csv"), render.TargetBackersCSV()); err != nil {
			return nil, err
		}

		written, err := p.Write(root)
		if err != nil {
			if !opts.Quiet {
				ux.PartialFailure(written)
			}
			return nil, err
		}
		if !opts.Quiet {
			ux.StepDone("%d documents for %s", len(written), cp.Name)
		}

		// The deck is binary and written directly; whatever lands on disk
		// (rich or fallback) is what gets archived.
		slides := deck.BuildSlides(ctx)
		deckBase := filepath.Join(root, cp.Name, cp.Name+"_Charter_Deck")
		res, err := deck.Generate(slides, deckBase, backend)
		if err != nil {
			return nil, err
		}
		if !opts.Quiet {
			if res.Degraded {
				ux.DegradedDeck(cp.Name, res.Err)
			} else {
				ux.StepDone("deck (%s) for %s", res.Mode, cp.Name)
			}
		}

		entry := manifest.CampaignEntry{
			Name:     cp.Name,
			Files:    relPaths(root, written),
			DeckMode: res.Mode,
			DeckPath: relPath(root, res.Path),
			Degraded: res.Degraded,
		}
		entry.Files = append(entry.Files, entry.DeckPath)
		m.Campaigns = append(m.Campaigns, entry)
		m.Files = append(m.Files, entry.Files...)
	}

	shared := pack.New()
	if len(contexts) > 1 {
		content, err := render.Render("comparison.md", render.Comparison{Campaigns: contexts, GeneratedAt: opts.GeneratedAt})
		if err != nil {
			return nil, err
		}
		if err := shared.AddString("Campaign_Comparison.md", content); err != nil {
			return nil, err
		}
	}
	if cfg.Platform != nil {
		if err := addPlatformDocs(shared, *cfg.Platform, opts.GeneratedAt); err != nil {
			return nil, err
		}
	}
	if shared.Len() > 0 {
		written, err := shared.Write(root)
		if err != nil {
			if !opts.Quiet {
				ux.PartialFailure(written)
			}
			return nil, err
		}
		if !opts.Quiet {
			ux.StepDone("%d shared documents", len(written))
		}
		m.Files = append(m.Files, relPaths(root, written)...)
	}

	result := &Result{PackRoot: root, Manifest: m}

	if !opts.NoArchive {
		archivePath := filepath.Join(opts.OutDir, cfg.PackName+".zip")
		if err := archive.Create(root, archivePath); err != nil {
			return nil, err
		}
		m.Archive = archivePath
		result.ArchivePath = archivePath
		if !opts.Quiet {
			ux.StepDone("archive %s", archivePath)
		}
	}

	result.ManifestPath = filepath.Join(opts.OutDir, cfg.PackName+".manifest.json")
	if err := m.Save(result.ManifestPath); err != nil {
		return nil, fmt.Errorf("saving manifest: %w", err)
	}
	if !opts.Quiet {
		ux.RenderSummary(m)
	}
	return result, nil
}

func addPlatformDocs(p *pack.Pack, plat campaign.Platform, generatedAt time.Time) error {
	site := render.Site{Platform: plat, GeneratedAt: generatedAt}
	slug := strings.ToLower(plat.Name)

	html, err := render.Render("landing.html", site)
	if err != nil {
		return err
	}
	css, err := render.Render("landing.css", site)
	if err != nil {
		return err
	}
	spec, err := render.Render("platform_spec.md", site)
	if err != nil {
		return err
	}
	api, err := render.OpenAPIStub(plat)
	if err != nil {
		return err
	}

	landingDir := slug + "_landing"
	if err := p.AddString(filepath.Join(landingDir, "index.html"), html); err != nil {
		return err
	}
	if err := p.AddString(filepath.Join(landingDir, "styles.css"), css); err != nil {
		return err
	}
	if err := p.AddString(slug+"_platform_spec.md", spec); err != nil {
		return err
	}
	return p.AddString(slug+"_openapi.json", api)
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func relPaths(root string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = relPath(root, p)
	}
	return out
}
