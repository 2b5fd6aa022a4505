package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/docstore"
)

type fakeStore struct {
	docs  map[string]docstore.Document
	lists map[string][]docstore.Document
	err   error
}

func (f *fakeStore) Get(_ context.Context, collection, id string) (docstore.Document, error) {
	if f.err != nil {
		return docstore.Document{}, f.err
	}
	doc, ok := f.docs[collection+"/"+id]
	if !ok {
		return docstore.Document{}, docstore.ErrNotFound
	}
	return doc, nil
}

func (f *fakeStore) List(_ context.Context, collection string) ([]docstore.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lists[collection], nil
}

func bioDoc(fields map[string]interface{}) *fakeStore {
	return &fakeStore{docs: map[string]docstore.Document{
		"bio/data": {ID: "data", Fields: fields},
	}}
}

func contactsDoc(fields map[string]interface{}) *fakeStore {
	return &fakeStore{docs: map[string]docstore.Document{
		"contacts/data": {ID: "data", Fields: fields},
	}}
}

func roleDoc(role string) docstore.Document {
	return docstore.Document{Fields: map[string]interface{}{"role": role}}
}

func TestBioLocationJoinsDomicileAndCountry(t *testing.T) {
	svc := NewProfileService(bioDoc(map[string]interface{}{
		"name": "Jane", "role": "Engineer",
		"domicile": "Jakarta", "country": "Indonesia",
	}))

	view, err := svc.Bio(context.Background())
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "Jakarta, Indonesia", view.Location)
}

func TestBioCountryOnlyLocation(t *testing.T) {
	svc := NewProfileService(bioDoc(map[string]interface{}{
		"name": "Jane", "country": "Indonesia",
	}))

	view, err := svc.Bio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Indonesia", view.Location)
}

func TestBioFormPlaceholderWhenUnconfigured(t *testing.T) {
	svc := NewProfileService(bioDoc(map[string]interface{}{"name": "Jane"}))

	view, err := svc.Bio(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.FormURL)
	assert.Equal(t, "Contact form not configured.", view.FormPlaceholder)

	svc = NewProfileService(bioDoc(map[string]interface{}{
		"form": "https://forms.example.com/contact",
	}))
	view, err = svc.Bio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://forms.example.com/contact", view.FormURL)
	assert.Empty(t, view.FormPlaceholder)
}

func TestBioMissingDocument(t *testing.T) {
	svc := NewProfileService(&fakeStore{})

	view, err := svc.Bio(context.Background())
	require.NoError(t, err)
	assert.Nil(t, view, "missing document keeps the static default")
}

func TestRolesIconsRoundRobin(t *testing.T) {
	svc := NewProfileService(&fakeStore{lists: map[string][]docstore.Document{
		"roles": {
			roleDoc("Backend"), roleDoc("Frontend"), roleDoc("Mobile"),
			roleDoc("Design"), roleDoc("DevOps"),
		},
	}})

	views, err := svc.Roles(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 5)

	for i, view := range views {
		assert.Equal(t, roleIcons[i%len(roleIcons)], view.Icon)
	}
	assert.Equal(t, views[0].Icon, views[4].Icon, "fifth role wraps back to the first icon")
}

func TestRolesMissingTitleDefaults(t *testing.T) {
	svc := NewProfileService(&fakeStore{lists: map[string][]docstore.Document{
		"roles": {{Fields: map[string]interface{}{"description": "things"}}},
	}})

	views, err := svc.Roles(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Service", views[0].Title)
}

func TestContactsSocialOnlyConfiguredKeys(t *testing.T) {
	svc := NewProfileService(contactsDoc(map[string]interface{}{
		"email":   "jane@example.com",
		"github":  "https://github.com/jane",
		"gitlab":  "https://gitlab.com/jane",
		"web_1":   "https://jane.dev",
		"myspace": "https://myspace.com/jane",
	}))

	view, err := svc.Contacts(context.Background())
	require.NoError(t, err)
	require.NotNil(t, view)

	keys := make([]string, 0, len(view.Social))
	for _, link := range view.Social {
		keys = append(keys, link.Key)
	}
	assert.Equal(t, []string{"github", "gitlab", "web_1"}, keys,
		"fixed key set in display order; unknown keys ignored")
	assert.Equal(t, "logo-github", view.Social[0].Icon)
	assert.Equal(t, "globe-outline", view.Social[2].Icon)
}

func TestContactsPhoneLinkRequiresDigit(t *testing.T) {
	svc := NewProfileService(contactsDoc(map[string]interface{}{
		"email": "jane@example.com",
		"phone": "+62 812 3456",
	}))

	view, err := svc.Contacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tel:+62 812 3456", view.PhoneHref)

	svc = NewProfileService(contactsDoc(map[string]interface{}{
		"email": "jane@example.com",
		"phone": "ask me",
	}))
	view, err = svc.Contacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ask me", view.Phone)
	assert.Empty(t, view.PhoneHref, "no digits, no tel: link")
}

func TestContactsEmailHref(t *testing.T) {
	svc := NewProfileService(contactsDoc(map[string]interface{}{
		"email": "jane@example.com",
	}))

	view, err := svc.Contacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mailto:jane@example.com", view.EmailHref)
}

func TestContactsStoreError(t *testing.T) {
	svc := NewProfileService(&fakeStore{err: errors.New("connection reset")})

	_, err := svc.Contacts(context.Background())
	assert.Error(t, err)
}
