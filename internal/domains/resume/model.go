package resume

import "time"

// WorkExperience is one work-history record after adapter normalization.
// Start/End zero values mean "absent": an absent start only ever matters
// for ordering (sorts oldest), an absent end renders as "Present".
type WorkExperience struct {
	ID          string
	Title       string
	Role        string
	Company     string
	Logo        string
	URL         string
	Description string
	Start       time.Time
	HasStart    bool
	End         time.Time
	HasEnd      bool
	// Legacy free-text fields, used only when no parsable start date exists.
	Period string
	Year   string
	// Nested portfolio projects; consumed by the gallery domain.
	Projects []SubProject
}

// SubProject is a project nested under a work record.
type SubProject struct {
	Name        string
	Role        string
	Description string
	Image       string
}

// ExperienceView is one timeline entry.
type ExperienceView struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// EducationView is one education timeline entry.
type EducationView struct {
	School      string `json:"school"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// SkillView carries the 1-10 strength scaled to a percentage,
// e.g. strength 7 renders as value 70 and label "70%".
type SkillView struct {
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Percentage string `json:"percentage"`
}

// CompanyView is one client-logo entry. An empty URL renders the logo
// without a link.
type CompanyView struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
	URL  string `json:"url,omitempty"`
}
