package profile

// View models mirror exactly what the page regions show. A nil view means
// the source document was missing and the region keeps its static default.

// BioView is the singleton bio/data document rendered for the sidebar and
// about section.
type BioView struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	About    string `json:"about"`
	// CVLink is empty when no CV is configured; the entry is hidden then.
	CVLink string `json:"cv_link,omitempty"`
	// FormURL is the embeddable contact-form URL. When empty the embed
	// region shows FormPlaceholder instead.
	FormURL         string `json:"form_url,omitempty"`
	FormPlaceholder string `json:"form_placeholder,omitempty"`
}

// RoleView is one entry of the "what i'm doing" list. Icons are assigned
// positionally, round-robin over a fixed palette of four.
type RoleView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ContactsView is the singleton contacts/data document.
type ContactsView struct {
	Email     string `json:"email"`
	EmailHref string `json:"email_href"`
	Phone     string `json:"phone,omitempty"`
	// PhoneHref is a tel: link when the phone field contains at least one
	// digit; otherwise empty and the element is rendered inert.
	PhoneHref string       `json:"phone_href,omitempty"`
	Social    []SocialLink `json:"social"`
}

// SocialLink is one social-platform entry, generated only for configured
// keys.
type SocialLink struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}
