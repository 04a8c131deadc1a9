package docs

var topics = []Topic{
	{
		Name:    "config",
		Title:   "Campaign configuration",
		Summary: "campaigns.yaml syntax and validation rules",
		Content: `CAMPAIGN CONFIGURATION

packgen reads a single YAML file (default: campaigns.yaml).

Top-level keys:

  schema             Config schema version, e.g. "1.0". Required. This
                     build accepts >= 1.0 and < 2.0.
  pack-name          Directory/archive name for the pack.
                     Default: campaign_packs.
  company            Legal entity name used in documents.
  venue              Governing law line, e.g. "Massachusetts, USA".
  start-date         Campaign start date, YYYY-MM-DD. Required.
  maintenance-price  Yearly maintenance option. Default: 5000.

milestones is an ordered list; due dates are cumulative from start-date
(each milestone is due 'weeks' weeks after the previous one). Fields:
name, weeks, percent (must sum to 100 across milestones), details,
evidence.

campaigns is a list of products to pitch. Fields: name (becomes a
directory name, so letters/digits/_/- only), blurb, audience, price,
backers, hook, capabilities, metrics, add-ons, acceptance, integrations.
Derived values (budget, tiered prices, due dates) are computed, never
configured.

platform is optional; when present packgen also emits a landing page
bundle, a platform planning doc, and an OpenAPI stub. Fields: name,
domain, tagline, fee-percent.`,
	},
	{
		Name:    "templates",
		Title:   "Document templates",
		Summary: "the rendered document set and its guarantees",
		Content: `DOCUMENT TEMPLATES

Each campaign renders to a fixed set of documents (one-pager, milestone
plan, demo script, objection FAQ, security packet, DPA short form,
data-flow diagram, pricing, pilot SOW, outreach sequence, outreach
email, video script) plus a header-only CSV target list. A pack with
more than one campaign also gets Campaign_Comparison.md.

Rendering is pure: the same config and generation date always produce
byte-identical documents. Templates cannot perform I/O or read the
clock; the generation date is part of the rendering context (pass
--date to pin it). A template referencing a value the context does not
carry fails the run immediately rather than rendering a blank.`,
	},
	{
		Name:    "deck",
		Title:   "Slide deck backends",
		Summary: "pptx vs. text rendering and degraded mode",
		Content: `SLIDE DECK BACKENDS

Each campaign gets a charter briefing deck derived from its config. Two
backends exist:

  pptx   A minimal OOXML .pptx written directly (no external tools).
  text   A Markdown rendering: heading, bullets, and a notes block per
         slide, slides separated by a rule.

--deck selects the backend (auto picks pptx when available). If the
pptx backend fails mid-write, packgen removes the partial file, writes
the text rendering instead, and reports the run as degraded; a broken
deck backend never fails the pipeline. The manifest records which mode
was actually used.`,
	},
	{
		Name:    "archive",
		Title:   "Archive semantics",
		Summary: "what ends up in the zip and why",
		Content: `ARCHIVE SEMANTICS

After generation, packgen zips the pack root into <pack-name>.zip next
to (not inside) the root. Entry names are paths relative to the root;
the walk is lexical, so the archive layout is reproducible.

The archive reflects what is on disk under the root at archiving time,
not just what this run wrote. Re-running into a root that still holds
files from a previous configuration will include those files too. Use a
clean output directory when you need the archive to match the manifest
exactly.

The run manifest (<pack-name>.manifest.json) is written next to the
archive and records the run id, per-campaign file lists, and the deck
mode used.`,
	},
}
