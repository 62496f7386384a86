package model

// Service is an offering shown on the services page. Icon is opaque to this
// layer: it may be an icon identifier or literal markup, and is passed through
// unchanged. Color names a gradient token understood by the frontend.
type Service struct {
	Base

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon,omitempty"`
	Color       string   `json:"color,omitempty"`
	Features    []string `json:"features"`
	Order       int      `json:"order"`
	IsActive    bool     `json:"isActive"`
}
