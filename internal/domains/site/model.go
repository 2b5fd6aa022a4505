package site

import (
	"portfolio-backend/internal/domains/activity"
	"portfolio-backend/internal/domains/gallery"
	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/domains/resume"
)

// PortfolioView is the whole page in one response. A nil/absent section
// means its loader failed or had no data; the page keeps that region's
// static default. No section failure ever fails the view as a whole.
type PortfolioView struct {
	Bio        *profile.BioView        `json:"bio,omitempty"`
	Roles      []profile.RoleView      `json:"roles,omitempty"`
	Contacts   *profile.ContactsView   `json:"contacts,omitempty"`
	Experience []resume.ExperienceView `json:"experience,omitempty"`
	Education  []resume.EducationView  `json:"education,omitempty"`
	Skills     []resume.SkillView      `json:"skills,omitempty"`
	Companies  []resume.CompanyView    `json:"companies,omitempty"`
	Activity   *activity.FeedView      `json:"activity,omitempty"`
	Gallery    *gallery.View           `json:"gallery,omitempty"`
}
