package linkedin

import (
	"sort"

	"github.com/jonathan/career-advisor/internal/types"
)

// defaultLocale is the locale preferred when reading localized name fields.
const defaultLocale = "en_US"

// LocalizedString is a multi-locale field such as firstName.
type LocalizedString struct {
	Localized map[string]string `json:"localized"`
}

// Value returns the en_US text, or the first locale in sorted order.
func (l LocalizedString) Value() string {
	if v, ok := l.Localized[defaultLocale]; ok {
		return v
	}
	locales := make([]string, 0, len(l.Localized))
	for locale := range l.Localized {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	if len(locales) == 0 {
		return ""
	}
	return l.Localized[locales[0]]
}

// Profile is the /v2/me response. Both the lite-profile and the localized
// name shapes are decoded.
type Profile struct {
	ID                 string          `json:"id"`
	LocalizedFirstName string          `json:"localizedFirstName"`
	LocalizedLastName  string          `json:"localizedLastName"`
	LocalizedHeadline  string          `json:"localizedHeadline"`
	FirstName          LocalizedString `json:"firstName"`
	LastName           LocalizedString `json:"lastName"`
	EmailAddress       string          `json:"emailAddress"`
	ProfilePicture     struct {
		DisplayImage string `json:"displayImage"`
	} `json:"profilePicture"`
}

// GivenName returns the first name from whichever shape is present.
func (p *Profile) GivenName() string {
	if p.LocalizedFirstName != "" {
		return p.LocalizedFirstName
	}
	return p.FirstName.Value()
}

// FamilyName returns the last name from whichever shape is present.
func (p *Profile) FamilyName() string {
	if p.LocalizedLastName != "" {
		return p.LocalizedLastName
	}
	return p.LastName.Value()
}

// Details maps the profile to a session identity. The member id is the username.
func (p *Profile) Details() types.SessionUser {
	return types.SessionUser{
		ID:         p.ID,
		Username:   p.ID,
		FirstName:  p.GivenName(),
		LastName:   p.FamilyName(),
		Email:      p.EmailAddress,
		PictureURL: p.ProfilePicture.DisplayImage,
		Provider:   types.ProviderLinkedIn,
	}
}

// Seed returns the parts of the profile the advisor can reuse. LinkedIn does not
// expose skills or positions here, so those stay empty.
func (p *Profile) Seed() *types.ProfileInput {
	user := p.Details()
	seed := types.NewProfileInput()
	seed.Name = user.DisplayName()
	seed.Headline = p.LocalizedHeadline
	return seed
}
