package handlers

import (
	"net/http"

	"travel-storefront/internal/api"
	"travel-storefront/internal/models"

	"github.com/go-chi/chi/v5"
)

// PublicHandler serves the pages anyone can browse: home, the activity
// catalog and the published promos.
type PublicHandler struct {
	api       *api.Client
	templates *TemplateCache
}

func NewPublicHandler(client *api.Client, templates *TemplateCache) *PublicHandler {
	return &PublicHandler{api: client, templates: templates}
}

// HomePage renders banners, featured promos and a slice of the catalog.
func (h *PublicHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := pageData(r)

	// Each section degrades independently; a broken upstream list leaves
	// an empty section, not a broken page.
	if banners, err := h.api.Banners(ctx); err == nil {
		data["Banners"] = banners
	} else {
		data["Banners"] = []models.Banner{}
	}
	if promos, err := h.api.Promos(ctx); err == nil {
		data["Promos"] = promos
	} else {
		data["Promos"] = []models.Promo{}
	}
	if activities, err := h.api.Activities(ctx, 8); err == nil {
		data["Activities"] = activities
	} else {
		data["Activities"] = []models.Activity{}
	}

	render(w, r, h.templates, "home.html", data)
}

// ActivityListPage renders the catalog, optionally filtered by category.
func (h *PublicHandler) ActivityListPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categoryID := r.URL.Query().Get("category")
	var (
		activities []models.Activity
		err        error
	)
	if categoryID != "" {
		activities, err = h.api.ActivitiesByCategory(ctx, categoryID)
	} else {
		activities, err = h.api.Activities(ctx, 0)
	}
	if err != nil {
		failRedirect(w, r, err, "/")
		return
	}

	data := pageData(r)
	data["Activities"] = activities
	data["SelectedCategory"] = categoryID
	if categories, err := h.api.Categories(ctx); err == nil {
		data["Categories"] = categories
	}

	render(w, r, h.templates, "activities.html", data)
}

// ActivityDetailPage renders one activity.
func (h *PublicHandler) ActivityDetailPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	activity, err := h.api.Activity(r.Context(), id)
	if err != nil {
		if api.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		failRedirect(w, r, err, "/activity")
		return
	}

	data := pageData(r)
	data["Activity"] = activity
	render(w, r, h.templates, "activity_detail.html", data)
}

// PromosPage renders the published promo list.
func (h *PublicHandler) PromosPage(w http.ResponseWriter, r *http.Request) {
	promos, err := h.api.Promos(r.Context())
	if err != nil {
		failRedirect(w, r, err, "/")
		return
	}

	data := pageData(r)
	data["Promos"] = promos
	render(w, r, h.templates, "promos.html", data)
}
