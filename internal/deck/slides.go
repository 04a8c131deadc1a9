package deck

import (
	"fmt"
	"strings"

	"github.com/vibefunder/packgen/internal/campaign"
)

// dollars formats a whole-dollar amount with thousands separators.
func dollars(n int) string {
	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "$" + strings.Join(parts, ",")
}

// BuildSlides derives the charter briefing deck from a campaign context.
// Slide content is a pure function of the context, so a fixed context
// always yields an identical deck.
func BuildSlides(ctx campaign.Context) []Slide {
	slides := []Slide{
		{
			Title: fmt.Sprintf("%s — Charter Backer Briefing", ctx.DisplayName),
			Bullets: []string{
				"Date: " + ctx.GeneratedAt.Format("January 2, 2006"),
				"Charter access • Code escrow • Milestone escrow",
				"Audience: " + ctx.Audience,
			},
			Notes: fmt.Sprintf("Open by framing the pain: demo is easy, enterprise hard. We're here to fund the hardening with %d charter backers.", ctx.Backers),
		},
		{
			Title:   "Problem & Solution",
			Bullets: []string{ctx.Blurb},
			Notes:   "Anchor on time wasted and risk. Existing tools capture, they don't evaluate.",
		},
		{
			Title:   "Core Capabilities (v1)",
			Bullets: ctx.Capabilities,
			Notes:   "Transition to the demo flow next.",
		},
		{
			Title: "What You Get as a Charter Backer",
			Bullets: []string{
				"Lifetime org license (or 5-Year All-Inclusive)",
				"Source-code escrow & continuity triggers",
				"Deployment options: SaaS / VPC / on-prem",
				"Quarterly charter council; roadmap influence",
			},
			Notes: "Emphasize 'buyer, not investor': value and control without equity paperwork.",
		},
	}

	milestones := Slide{
		Title: "Milestones & Dates",
		Notes: "Point to acceptance evidence and 10-day review windows.",
	}
	for i, m := range ctx.Milestones {
		milestones.Bullets = append(milestones.Bullets,
			fmt.Sprintf("M%d %s — due %s (%d%%)", i+1, m.Name, m.Due.Format("2006-01-02"), m.Percent))
	}
	milestones.Bullets = append(milestones.Bullets, "Funds released per milestone on acceptance")
	slides = append(slides, milestones)

	slides = append(slides,
		Slide{
			Title: "Budget & Mechanics",
			Bullets: []string{
				fmt.Sprintf("%s total (%d × %s) held in escrow", dollars(ctx.Budget), ctx.Backers, dollars(ctx.Price)),
				fmt.Sprintf("Option: %s/yr maintenance and security updates", dollars(ctx.MaintenancePrice)),
				"No equity, no rev-share; commercial license + code escrow",
			},
			Notes: "Reiterate the simplicity of the commercial path vs. venture investment paperwork.",
		},
		Slide{
			Title:   "Success Metrics",
			Bullets: ctx.Metrics,
			Notes:   "These metrics become the proof points for broader GTM.",
		},
		Slide{
			Title: "Next Steps",
			Bullets: []string{
				"See the 15-minute demo now",
				"Pick deployment (SaaS/VPC/on-prem)",
				"Sign Charter License; funds deposit to escrow",
				"Week 1: charter council to lock v1 scope",
			},
			Notes: "Close decisively and book the follow-up.",
		},
	)

	return slides
}
