package resume

import "context"

// Service renders the resume sections: work timeline, education timeline,
// skills and the client-logo strip. Empty collections yield nil slices so
// the page regions keep their defaults.
type Service interface {
	Experience(ctx context.Context) ([]ExperienceView, error)
	Education(ctx context.Context) ([]EducationView, error)
	Skills(ctx context.Context) ([]SkillView, error)
	Companies(ctx context.Context) ([]CompanyView, error)
}
