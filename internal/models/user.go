package models

import (
	"encoding/json"
	"strings"
)

// Role values as the upstream API reports them. Comparison is always
// case-insensitive because the API has returned both "admin" and "Admin".
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the cached profile that proves a login. It is written to the
// session store at login time and parsed back on every guarded navigation.
type User struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	PhoneNumber       string `json:"phoneNumber"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}

// UnmarshalJSON absorbs upstream naming drift: the API has shipped the role
// under both "role" and "userRole", and the phone/avatar fields under camel
// and snake case.
func (u *User) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID                string `json:"id"`
		Name              string `json:"name"`
		Email             string `json:"email"`
		Role              string `json:"role"`
		UserRole          string `json:"userRole"`
		PhoneCamel        string `json:"phoneNumber"`
		PhoneSnake        string `json:"phone_number"`
		ProfilePictCamel  string `json:"profilePictureUrl"`
		ProfilePictSnake  string `json:"profile_picture_url"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	u.ID = raw.ID
	u.Name = raw.Name
	u.Email = raw.Email
	u.Role = firstNonEmpty(raw.Role, raw.UserRole)
	u.PhoneNumber = firstNonEmpty(raw.PhoneCamel, raw.PhoneSnake)
	u.ProfilePictureURL = firstNonEmpty(raw.ProfilePictCamel, raw.ProfilePictSnake)
	return nil
}

// IsAdmin reports whether the cached role grants access to the admin area.
func (u *User) IsAdmin() bool {
	return u != nil && strings.EqualFold(u.Role, RoleAdmin)
}

// HomePath is where a session of this role belongs after login or when
// redirected away from a page it may not see.
func (u *User) HomePath() string {
	if u.IsAdmin() {
		return "/admin"
	}
	return "/"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
