package handlers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"travel-storefront/internal/api"
	"travel-storefront/internal/middleware"
	"travel-storefront/internal/session"

	"github.com/gorilla/csrf"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10
}

// pageData collects what every page shows: the current user, a pending
// flash message and the CSRF field for forms.
func pageData(r *http.Request) map[string]any {
	sess := session.FromContext(r.Context())
	return map[string]any{
		"User":      middleware.GetUserFromContext(r.Context()),
		"Flash":     session.PopFlash(sess),
		"CSRFField": csrf.TemplateField(r),
		"Path":      r.URL.Path,
	}
}

// render executes a cached page template.
func render(w http.ResponseWriter, r *http.Request, tc *TemplateCache, name string, data map[string]any) {
	tmpl := tc.Get(name)
	if tmpl == nil {
		slog.Error("template not found", "name", name)
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	if err := tmpl.Execute(w, data); err != nil {
		slog.Error("failed to render template", "name", name, "error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()))
	}
}

// failRedirect surfaces an API error as a flash and sends the user to a
// known-good page. An expired session goes to login instead; the client has
// already cleared the stored token and profile by then.
func failRedirect(w http.ResponseWriter, r *http.Request, err error, to string) {
	sess := session.FromContext(r.Context())
	if api.IsUnauthorized(err) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	session.SetFlash(sess, api.FriendlyMessage(err))
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func parseFloat(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}
