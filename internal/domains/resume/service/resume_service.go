package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/domains/resume"
)

type resumeService struct {
	store docstore.Store
	// pinnedEmployer forces matching work records to the top of the
	// timeline regardless of dates. Configured, case-insensitive substring.
	pinnedEmployer string
}

func NewResumeService(store docstore.Store, pinnedEmployer string) resume.Service {
	return &resumeService{
		store:          store,
		pinnedEmployer: strings.ToLower(pinnedEmployer),
	}
}

// LoadWorks reads and normalizes every work record. Exported because the
// gallery and company sections derive from the same collection.
func LoadWorks(ctx context.Context, store docstore.Store) ([]resume.WorkExperience, error) {
	docs, err := store.List(ctx, "works")
	if err != nil {
		return nil, fmt.Errorf("load works: %w", err)
	}

	works := make([]resume.WorkExperience, 0, len(docs))
	for _, doc := range docs {
		work := resume.WorkExperience{
			ID:          doc.ID,
			Title:       doc.String("title"),
			Role:        doc.String("role"),
			Company:     doc.String("company"),
			Logo:        doc.String("logo"),
			Description: doc.String("description"),
			Period:      doc.String("period"),
			Year:        doc.String("year"),
		}

		// Some legacy rows use "website" instead of "url".
		work.URL = doc.String("url")
		if work.URL == "" {
			work.URL = doc.String("website")
		}

		work.Start, work.HasStart = doc.Instant("date_start")
		work.End, work.HasEnd = doc.Instant("date_end")

		for _, m := range doc.Maps("projects") {
			sub := docstore.Document{Fields: m}
			work.Projects = append(work.Projects, resume.SubProject{
				Name:        sub.String("name"),
				Role:        sub.String("role"),
				Description: sub.String("desc"),
				Image:       sub.String("image"),
			})
		}

		works = append(works, work)
	}

	return works, nil
}

func (s *resumeService) Experience(ctx context.Context) ([]resume.ExperienceView, error) {
	works, err := LoadWorks(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if len(works) == 0 {
		return nil, nil
	}

	s.sortWorks(works)

	views := make([]resume.ExperienceView, 0, len(works))
	for _, work := range works {
		title := work.Title
		if title == "" {
			title = work.Role
		}
		if title == "" {
			title = "Job Title"
		}

		views = append(views, resume.ExperienceView{
			Title:       title,
			Company:     work.Company,
			Period:      formatWorkPeriod(work),
			Description: work.Description,
		})
	}

	return views, nil
}

// sortWorks orders the timeline: pinned-employer matches first, then
// descending by start date. Records without a start date compare as epoch
// zero, i.e. oldest.
func (s *resumeService) sortWorks(works []resume.WorkExperience) {
	sort.SliceStable(works, func(i, j int) bool {
		pinnedI := s.isPinned(works[i])
		pinnedJ := s.isPinned(works[j])
		if pinnedI != pinnedJ {
			return pinnedI
		}
		return startSeconds(works[i]) > startSeconds(works[j])
	})
}

func (s *resumeService) isPinned(work resume.WorkExperience) bool {
	if s.pinnedEmployer == "" {
		return false
	}
	return strings.Contains(strings.ToLower(work.Company), s.pinnedEmployer) ||
		strings.Contains(strings.ToLower(work.Title), s.pinnedEmployer)
}

func startSeconds(work resume.WorkExperience) int64 {
	if !work.HasStart {
		return 0
	}
	return work.Start.Unix()
}

// formatWorkPeriod renders "Jan 2006 — Present" style ranges. Records with
// no parsable start date fall back to the legacy period/year text, or "".
func formatWorkPeriod(work resume.WorkExperience) string {
	if !work.HasStart {
		if work.Period != "" {
			return work.Period
		}
		return work.Year
	}

	end := "Present"
	if work.HasEnd {
		end = work.End.Format("Jan 2006")
	}
	return work.Start.Format("Jan 2006") + " — " + end
}

func (s *resumeService) Education(ctx context.Context) ([]resume.EducationView, error) {
	docs, err := s.store.List(ctx, "educations")
	if err != nil {
		return nil, fmt.Errorf("load educations: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	// Descending on whichever date-ish field the row has. The legacy rows
	// are free text, so this stays a plain string comparison.
	sort.SliceStable(docs, func(i, j int) bool {
		return educationSortKey(docs[i]) > educationSortKey(docs[j])
	})

	views := make([]resume.EducationView, 0, len(docs))
	for _, doc := range docs {
		school := doc.String("institution")
		if school == "" {
			school = doc.String("school")
		}
		if school == "" {
			school = "School"
		}

		description := doc.String("description")
		if description == "" {
			description = doc.String("degree")
		}

		views = append(views, resume.EducationView{
			School:      school,
			Period:      formatEducationPeriod(doc),
			Description: description,
		})
	}

	return views, nil
}

func educationSortKey(doc docstore.Document) string {
	if v := doc.String("startDate"); v != "" {
		return v
	}
	if v := doc.String("year"); v != "" {
		return v
	}
	return doc.String("period")
}

func formatEducationPeriod(doc docstore.Document) string {
	start := doc.String("startDate")
	end := doc.String("endDate")
	switch {
	case start != "" && end != "":
		return start + " — " + end
	case doc.String("period") != "":
		return doc.String("period")
	default:
		return doc.String("year")
	}
}

func (s *resumeService) Skills(ctx context.Context) ([]resume.SkillView, error) {
	docs, err := s.store.List(ctx, "skills")
	if err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Int("strength") > docs[j].Int("strength")
	})

	views := make([]resume.SkillView, 0, len(docs))
	for _, doc := range docs {
		name := doc.String("skill")
		if name == "" {
			name = "Skill"
		}
		// 1-10 scale to 0-100%
		value := doc.Int("strength") * 10
		views = append(views, resume.SkillView{
			Name:       name,
			Value:      value,
			Percentage: fmt.Sprintf("%d%%", value),
		})
	}

	return views, nil
}

func (s *resumeService) Companies(ctx context.Context) ([]resume.CompanyView, error) {
	works, err := LoadWorks(ctx, s.store)
	if err != nil {
		return nil, err
	}

	// De-duplicate by trimmed company name, first occurrence wins.
	// Records without a logo never make the strip.
	seen := make(map[string]bool)
	var views []resume.CompanyView
	for _, work := range works {
		name := strings.TrimSpace(work.Company)
		if work.Logo == "" || name == "" || seen[name] {
			continue
		}
		seen[name] = true
		views = append(views, resume.CompanyView{
			Name: name,
			Logo: work.Logo,
			URL:  work.URL,
		})
	}

	return views, nil
}
