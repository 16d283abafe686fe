package session

// Identity is the authenticated user's profile record as returned by the
// backend. Optional fields are empty strings when unset.
type Identity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// ProfileUpdate carries a partial identity for PUT /user/profile. Nil fields
// are omitted from the request so the backend leaves them untouched.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Title    *string `json:"title,omitempty"`
	Company  *string `json:"company,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

// String is a convenience for building ProfileUpdate literals.
func String(s string) *string {
	return &s
}
