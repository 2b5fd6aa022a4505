package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/domains/profile"
)

// Fixed icon palette; roles pick icons positionally, wrapping around.
var roleIcons = []string{
	"./assets/images/icon-app.svg",
	"./assets/images/icon-photo.svg",
	"./assets/images/icon-dev.svg",
	"./assets/images/icon-design.svg",
}

// socialMapping is the fixed set of social-platform keys, in display
// order, with their icon names.
var socialMapping = []struct {
	Key  string
	Icon string
}{
	{"github", "logo-github"},
	{"facebook", "logo-facebook"},
	{"twitter", "logo-twitter"},
	{"instagram", "logo-instagram"},
	{"linkedin", "logo-linkedin"},
	{"gitlab", "logo-gitlab"},
	{"repo", "logo-gitlab"},
	{"web_1", "globe-outline"},
}

type profileService struct {
	store docstore.Store
}

func NewProfileService(store docstore.Store) profile.Service {
	return &profileService{store: store}
}

func (s *profileService) Bio(ctx context.Context) (*profile.BioView, error) {
	doc, err := s.store.Get(ctx, "bio", "data")
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load bio: %w", err)
	}

	view := &profile.BioView{
		Name:   doc.String("name"),
		Title:  doc.String("role"),
		About:  doc.String("aboutme"),
		CVLink: doc.String("cv"),
	}

	// Location is "domicile, country"; country alone when domicile is absent.
	domicile := doc.String("domicile")
	country := doc.String("country")
	switch {
	case domicile != "" && country != "":
		view.Location = domicile + ", " + country
	case country != "":
		view.Location = country
	}

	if form := doc.String("form"); form != "" {
		view.FormURL = form
	} else {
		view.FormPlaceholder = "Contact form not configured."
	}

	return view, nil
}

func (s *profileService) Roles(ctx context.Context) ([]profile.RoleView, error) {
	docs, err := s.store.List(ctx, "roles")
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	views := make([]profile.RoleView, 0, len(docs))
	for i, doc := range docs {
		title := doc.String("role")
		if title == "" {
			title = "Service"
		}
		views = append(views, profile.RoleView{
			Title:       title,
			Description: doc.String("description"),
			Icon:        roleIcons[i%len(roleIcons)],
		})
	}

	return views, nil
}

func (s *profileService) Contacts(ctx context.Context) (*profile.ContactsView, error) {
	doc, err := s.store.Get(ctx, "contacts", "data")
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}

	view := &profile.ContactsView{
		Email:     doc.String("email"),
		EmailHref: "mailto:" + doc.String("email"),
		Phone:     doc.String("phone"),
		Social:    []profile.SocialLink{},
	}

	// A phone without a single digit cannot be dialed, so leave the link out.
	if phone := view.Phone; strings.ContainsAny(phone, "0123456789") {
		view.PhoneHref = "tel:" + phone
	}

	for _, item := range socialMapping {
		if url := doc.String(item.Key); url != "" {
			view.Social = append(view.Social, profile.SocialLink{
				Key:  item.Key,
				URL:  url,
				Icon: item.Icon,
			})
		}
	}

	return view, nil
}
