package profile

import "context"

// Service renders the bio, roles and contacts sections.
// Each method returns a nil view (and nil error) when the backing document
// is missing, so the caller leaves the static default in place.
type Service interface {
	Bio(ctx context.Context) (*BioView, error)
	Roles(ctx context.Context) ([]RoleView, error)
	Contacts(ctx context.Context) (*ContactsView, error)
}
