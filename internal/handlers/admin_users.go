package handlers

import (
	"net/http"
	"strings"

	"travel-storefront/internal/api"
	"travel-storefront/internal/models"
	"travel-storefront/internal/session"

	"github.com/go-chi/chi/v5"
)

// AdminUserHandler lists accounts and flips their roles.
type AdminUserHandler struct {
	api       *api.Client
	templates *TemplateCache
}

func NewAdminUserHandler(client *api.Client, templates *TemplateCache) *AdminUserHandler {
	return &AdminUserHandler{api: client, templates: templates}
}

func (h *AdminUserHandler) UsersPage(w http.ResponseWriter, r *http.Request) {
	users, err := h.api.AllUsers(r.Context())
	if err != nil {
		failRedirect(w, r, err, "/admin")
		return
	}

	data := pageData(r)
	data["Users"] = users
	render(w, r, h.templates, "admin_users.html", data)
}

// UpdateRole switches an account between the two known roles.
func (h *AdminUserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	role := strings.ToLower(strings.TrimSpace(r.FormValue("role")))
	if role != models.RoleAdmin && role != models.RoleUser {
		session.SetFlash(session.FromContext(r.Context()), "Unknown role.")
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	if err := h.api.UpdateUserRole(r.Context(), id, role); err != nil {
		failRedirect(w, r, err, "/admin/users")
		return
	}

	session.SetFlash(session.FromContext(r.Context()), "Role updated.")
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}
