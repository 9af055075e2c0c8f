package core

// DefaultTimezone is filled into contact profiles that omit a timezone.
const DefaultTimezone = "Asia/Dubai"

// Preferences captures per-contact scheduling preferences consulted when
// building meeting briefs.
type Preferences struct {
	MorningOnly bool     `json:"morning_only,omitempty"`
	AvoidDays   []string `json:"avoid_days,omitempty"`
}

// Profile is a known contact keyed by email. Timezone defaults to
// DefaultTimezone when unset.
type Profile struct {
	Email       string      `json:"email"`
	Name        string      `json:"name,omitempty"`
	Timezone    string      `json:"timezone"`
	Preferences Preferences `json:"preferences,omitempty"`
	Notes       string      `json:"notes,omitempty"`
}

// ContactStore is an unordered keyed collection of contact profiles. GetAll
// and Clear are full-scan operations with no ordering guarantee.
type ContactStore interface {
	// Get returns the profile for the email, with a found flag.
	Get(email string) (Profile, bool, error)

	// Set inserts or replaces the profile keyed by its email.
	Set(p Profile) error

	// Has reports whether a profile exists for the email.
	Has(email string) (bool, error)

	// Delete removes the profile, reporting whether one existed.
	Delete(email string) (bool, error)

	// GetAll returns every stored profile in unspecified order.
	GetAll() ([]Profile, error)

	// Clear removes all profiles.
	Clear() error
}
