package service

import (
	"context"
	"fmt"
	"sync"

	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/domains/activity"
	"portfolio-backend/internal/domains/gallery"
	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/domains/resume"
	"portfolio-backend/internal/domains/site"
	"portfolio-backend/pkg/logger"
)

type siteService struct {
	profile  profile.Service
	resume   resume.Service
	activity activity.Service
	gallery  gallery.Service
}

func NewSiteService(
	profileSvc profile.Service,
	resumeSvc resume.Service,
	activitySvc activity.Service,
	gallerySvc gallery.Service,
) site.Service {
	return &siteService{
		profile:  profileSvc,
		resume:   resumeSvc,
		activity: activitySvc,
		gallery:  gallerySvc,
	}
}

// Build fires every section loader concurrently and joins them as a
// best-effort batch. Each goroutine writes a distinct field of the view;
// a failed or panicking section is logged and leaves its field nil.
func (s *siteService) Build(ctx context.Context) *site.PortfolioView {
	view := &site.PortfolioView{}
	var wg sync.WaitGroup

	section := func(name string, load func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Error("section panicked: "+name, fmt.Errorf("%v", r))
				}
			}()

			if err := load(); err != nil {
				logger.Error("Error loading "+name, err)
				if docstore.IsPermissionDenied(err) {
					logger.Warn("PERMISSION DENIED: check the document store access grants for the service role.",
						map[string]interface{}{"section": name})
				}
			}
		}()
	}

	section("Bio", func() (err error) {
		view.Bio, err = s.profile.Bio(ctx)
		return err
	})
	section("Roles", func() (err error) {
		view.Roles, err = s.profile.Roles(ctx)
		return err
	})
	section("Contacts", func() (err error) {
		view.Contacts, err = s.profile.Contacts(ctx)
		return err
	})
	section("Experience", func() (err error) {
		view.Experience, err = s.resume.Experience(ctx)
		return err
	})
	section("Education", func() (err error) {
		view.Education, err = s.resume.Education(ctx)
		return err
	})
	section("Skills", func() (err error) {
		view.Skills, err = s.resume.Skills(ctx)
		return err
	})
	section("Companies", func() (err error) {
		view.Companies, err = s.resume.Companies(ctx)
		return err
	})
	section("Activity", func() (err error) {
		view.Activity, err = s.activity.Feed(ctx)
		return err
	})
	section("Gallery", func() (err error) {
		view.Gallery, err = s.gallery.View(ctx, "")
		return err
	})

	wg.Wait()
	return view
}
