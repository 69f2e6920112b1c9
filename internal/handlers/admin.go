package handlers

import (
	"net/http"

	"travel-storefront/internal/api"
)

// AdminHandler serves the admin dashboard. The section screens live in
// their own files; this one just aggregates counts for the landing page.
type AdminHandler struct {
	api       *api.Client
	templates *TemplateCache
}

func NewAdminHandler(client *api.Client, templates *TemplateCache) *AdminHandler {
	return &AdminHandler{api: client, templates: templates}
}

// Dashboard renders the admin landing page with headline counts. Each
// count degrades to zero independently if its list call fails.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	counts := map[string]int{}

	if activities, err := h.api.Activities(ctx, 0); err == nil {
		counts["Activities"] = len(activities)
	}
	if promos, err := h.api.Promos(ctx); err == nil {
		counts["Promos"] = len(promos)
	}
	if banners, err := h.api.Banners(ctx); err == nil {
		counts["Banners"] = len(banners)
	}
	if txs, err := h.api.AllTransactions(ctx); err == nil {
		counts["Transactions"] = len(txs)
	}
	if users, err := h.api.AllUsers(ctx); err == nil {
		counts["Users"] = len(users)
	}

	data := pageData(r)
	data["Counts"] = counts
	render(w, r, h.templates, "admin_dashboard.html", data)
}
