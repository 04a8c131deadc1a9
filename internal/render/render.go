// Package render maps template names to rendered document content.
//
// Templates are embedded at build time and parsed once. Rendering is pure:
// the same name and context always produce identical bytes, and no template
// performs I/O or reads the clock. A template referencing a field the
// context does not carry fails at render time rather than substituting an
// empty value.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/vibefunder/packgen/internal/campaign"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"comma":    comma,
	"join":     strings.Join,
	"add":      func(a, b int) int { return a + b },
	"iso":      func(t time.Time) string { return t.Format("2006-01-02") },
	"longDate": func(t time.Time) string { return t.Format("January 2, 2006") },
	"year":     func(t time.Time) int { return t.Year() },
	"tld": func(domain string) string {
		if i := strings.LastIndex(domain, "."); i >= 0 {
			return domain[i:]
		}
		return ""
	},
}

var templates = template.Must(
	template.New("").Option("missingkey=error").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))

// Doc pairs a template with the filename it renders to inside a campaign
// directory. The order here is the pack order.
type Doc struct {
	Template string
	Filename string
}

// CampaignDocs is the per-campaign document set.
var CampaignDocs = []Doc{
	{"onepager.md", "01_OnePager.md"},
	{"milestone_plan.md", "02_MilestonePlan.md"},
	{"demo_script.md", "03_DemoScript.md"},
	{"objection_faq.md", "04_ObjectionHandlingFAQ.md"},
	{"security_packet.md", "05_SecurityPacket_SIGLite.md"},
	{"dpa_short_form.md", "06_DPA_ShortForm.md"},
	{"dataflow.mmd", "07_DataFlow_Diagram.mmd"},
	{"pricing_licensing.md", "08_Pricing_and_Licensing.md"},
	{"pilot_sow.md", "09_Pilot_SOW.md"},
	{"outreach_sequence.md", "10_Outreach_Sequence.md"},
	{"outreach_email.txt", "11_OutreachEmail.txt"},
	{"video_script.md", "12_DemoVideoScript.md"},
}

// Comparison is the context for the cross-campaign comparison table.
type Comparison struct {
	Campaigns   []campaign.Context
	GeneratedAt time.Time
}

// Site is the context for the platform artifacts (landing page bundle,
// planning doc).
type Site struct {
	Platform    campaign.Platform
	GeneratedAt time.Time
}

// Render executes the named template against the given context.
func Render(name string, data any) (string, error) {
	t := templates.Lookup(name + ".tmpl")
	if t == nil {
		return "", fmt.Errorf("render: unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render: template %q: %w", name, err)
	}
	return buf.String(), nil
}

// Names returns every registered template name, sorted.
func Names() []string {
	var names []string
	for _, t := range templates.Templates() {
		if n, ok := strings.CutSuffix(t.Name(), ".tmpl"); ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// comma formats an integer with thousands separators: 100000 -> "100,000".
func comma(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + strings.Join(parts, ",")
}
