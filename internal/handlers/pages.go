package handlers

import (
	"net/http"
)

// PageHandler serves the mostly-static pages: wishlist, notifications, the
// help center and the not-found page.
type PageHandler struct {
	templates *TemplateCache
}

func NewPageHandler(templates *TemplateCache) *PageHandler {
	return &PageHandler{templates: templates}
}

// WishlistPage is a signed-in placeholder page.
func (h *PageHandler) WishlistPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.templates, "wishlist.html", pageData(r))
}

// NotificationsPage is a signed-in placeholder page.
func (h *PageHandler) NotificationsPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.templates, "notifications.html", pageData(r))
}

// HelpCenterPage is public.
func (h *PageHandler) HelpCenterPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.templates, "help_center.html", pageData(r))
}

// NotFound renders the 404 page for unknown routes.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	render(w, r, h.templates, "not_found.html", pageData(r))
}
