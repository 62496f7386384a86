package model

// PlaceholderProjectID is the fixed identifier of the synthesized project
// returned when neither the filtered query nor the raw scan yields any data.
// Callers can rely on it (or the Placeholder flag) to tell demo filler from
// real records.
const PlaceholderProjectID = "projects:placeholder"

// Project is a portfolio entry. Technologies and Features are always
// materialized as slices, never nil, regardless of how the document stores
// them (list, comma-delimited string, or absent).
type Project struct {
	Base

	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	CaseStudyURL string   `json:"caseStudyUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	Order        int      `json:"order"`
	IsActive     bool     `json:"isActive"`

	// Placeholder marks an entity synthesized by the read fallback rather
	// than loaded from the store.
	Placeholder bool `json:"placeholder,omitempty"`
}

// PlaceholderProject returns the single renderable entry used when the
// projects collection is unreachable or empty.
func PlaceholderProject() Project {
	return Project{
		Base:         Base{ID: PlaceholderProjectID},
		Title:        "Sample Project",
		Description:  "Project data is being set up. Check back soon.",
		Category:     "general",
		Technologies: []string{},
		Features:     []string{"No features specified"},
		Order:        0,
		IsActive:     true,
		Placeholder:  true,
	}
}
