package model

// ContactInfo holds the site's contact details. At most one active record is
// expected per store; the repository's save path updates the existing active
// record instead of inserting a second one.
type ContactInfo struct {
	Base

	Email         string       `json:"email"`
	Phone         string       `json:"phone,omitempty"`
	Address       string       `json:"address,omitempty"`
	BusinessHours HoursSummary `json:"businessHours"`
	SocialMedia   SocialMedia  `json:"socialMedia"`
	IsActive      bool         `json:"isActive"`
}

// HoursSummary is the free-text schedule shown on the contact page, distinct
// from the structured per-day BusinessHour records.
type HoursSummary struct {
	Weekdays string `json:"weekdays,omitempty"`
	Weekends string `json:"weekends,omitempty"`
}

// SocialMedia groups profile links. Older documents stored these as flat
// top-level fields; coercion reads both shapes into this struct.
type SocialMedia struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Facebook string `json:"facebook,omitempty"`
}

// ContactSubmission is one message sent through the public contact form.
type ContactSubmission struct {
	Base

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	IsRead  bool   `json:"isRead"`
}
