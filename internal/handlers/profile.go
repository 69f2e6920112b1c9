package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"travel-storefront/internal/api"
	"travel-storefront/internal/middleware"
	"travel-storefront/internal/session"
)

// ProfileHandler shows and edits the signed-in user's profile. After a
// successful save the cached profile in the session is refreshed from the
// server so every page shows the new name immediately.
type ProfileHandler struct {
	api       *api.Client
	templates *TemplateCache
}

func NewProfileHandler(client *api.Client, templates *TemplateCache) *ProfileHandler {
	return &ProfileHandler{api: client, templates: templates}
}

// ProfilePage renders the profile form, preferring fresh server data over
// the session snapshot.
func (h *ProfileHandler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	data := pageData(r)
	data["Errors"] = map[string]string{}

	user := middleware.GetUserFromContext(r.Context())
	if fresh, err := h.api.Profile(r.Context()); err == nil {
		user = fresh
	} else if api.IsUnauthorized(err) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	data["User"] = user

	render(w, r, h.templates, "profile.html", data)
}

// UpdateProfile saves the edited fields upstream and re-caches the profile.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	req := api.UpdateProfileRequest{
		Name:              strings.TrimSpace(r.FormValue("name")),
		Email:             strings.TrimSpace(r.FormValue("email")),
		PhoneNumber:       strings.TrimSpace(r.FormValue("phone")),
		ProfilePictureURL: strings.TrimSpace(r.FormValue("profile_picture_url")),
	}

	errors := map[string]string{}
	if req.Name == "" {
		errors["name"] = "Name is required"
	}
	if req.Email == "" {
		errors["email"] = "Email is required"
	} else if !validEmail(req.Email) {
		errors["email"] = "Enter a valid email address"
	}
	if req.PhoneNumber != "" && !validPhone(req.PhoneNumber) {
		errors["phone"] = "Phone number needs at least 10 digits"
	}
	if len(errors) > 0 {
		data := pageData(r)
		data["Errors"] = errors
		data["Form"] = req
		w.WriteHeader(http.StatusUnprocessableEntity)
		render(w, r, h.templates, "profile.html", data)
		return
	}

	if err := h.api.UpdateProfile(r.Context(), req); err != nil {
		failRedirect(w, r, err, "/profile")
		return
	}

	// Refresh the session copy so the header and guards see the change.
	sess := session.FromContext(r.Context())
	if user, err := h.api.Profile(r.Context()); err == nil && sess != nil {
		if raw, err := json.Marshal(user); err == nil {
			_ = sess.Set(session.KeyProfile, string(raw))
		}
	}

	session.SetFlash(sess, "Profile updated.")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
