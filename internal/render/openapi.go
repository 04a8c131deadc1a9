package render

import (
	"encoding/json"
	"fmt"

	"github.com/vibefunder/packgen/internal/campaign"
)

// The OpenAPI stub is an opaque planning artifact: the pipeline renders and
// writes it but never interprets it.

type openAPIDoc struct {
	OpenAPI    string                         `json:"openapi"`
	Info       openAPIInfo                    `json:"info"`
	Servers    []openAPIServer                `json:"servers"`
	Paths      map[string]map[string]openAPIOp `json:"paths"`
	Components map[string]any                 `json:"components"`
}

type openAPIInfo struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type openAPIServer struct {
	URL string `json:"url"`
}

type openAPIOp struct {
	Summary   string                     `json:"summary"`
	Responses map[string]openAPIResponse `json:"responses"`
}

type openAPIResponse struct {
	Description string `json:"description"`
}

func op(summary, code, desc string) openAPIOp {
	return openAPIOp{
		Summary:   summary,
		Responses: map[string]openAPIResponse{code: {Description: desc}},
	}
}

// OpenAPIStub renders the platform REST API sketch as indented JSON.
func OpenAPIStub(p campaign.Platform) (string, error) {
	doc := openAPIDoc{
		OpenAPI: "3.0.3",
		Info:    openAPIInfo{Title: p.Name + " API", Version: "0.1.0"},
		Servers: []openAPIServer{{URL: "https://api." + p.Domain}},
		Paths: map[string]map[string]openAPIOp{
			"/auth/login": {
				"post": op("OIDC callback", "200", "OK"),
			},
			"/campaigns": {
				"get":  op("List campaigns", "200", "OK"),
				"post": op("Create campaign", "201", "Created"),
			},
			"/campaigns/{id}": {
				"get":   op("Get campaign", "200", "OK"),
				"patch": op("Update campaign", "200", "OK"),
			},
			"/campaigns/{id}/milestones": {
				"get":  op("List milestones", "200", "OK"),
				"post": op("Create milestone", "201", "Created"),
			},
			"/milestones/{id}/submit": {
				"post": op("Submit milestone for review", "200", "Submitted"),
			},
			"/milestones/{id}/accept": {
				"post": op("Accept milestone", "200", "Accepted"),
			},
			"/milestones/{id}/reject": {
				"post": op("Reject milestone", "200", "Rejected"),
			},
			"/pledges": {
				"post": op("Create pledge (authorize payment)", "201", "Created"),
			},
			"/escrow/{campaignId}/release": {
				"post": op("Release escrow for a milestone", "200", "Released"),
			},
			"/artifacts": {
				"post": op("Upload artifact metadata", "201", "Created"),
			},
			"/badges/{campaignId}": {
				"get": op("List badges", "200", "OK"),
			},
		},
		Components: map[string]any{},
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render: openapi stub: %w", err)
	}
	return string(out) + "\n", nil
}
