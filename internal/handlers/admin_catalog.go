package handlers

import (
	"net/http"
	"strings"

	"travel-storefront/internal/api"
	"travel-storefront/internal/session"

	"github.com/go-chi/chi/v5"
)

// AdminCatalogHandler is the CRUD surface over activities, promos, banners
// and payment methods. Every operation proxies straight to the API; the
// handlers only validate the obviously-required fields and translate
// between form values and request payloads.
type AdminCatalogHandler struct {
	api       *api.Client
	templates *TemplateCache
}

func NewAdminCatalogHandler(client *api.Client, templates *TemplateCache) *AdminCatalogHandler {
	return &AdminCatalogHandler{api: client, templates: templates}
}

// --- activities ---

func (h *AdminCatalogHandler) ActivitiesPage(w http.ResponseWriter, r *http.Request) {
	activities, err := h.api.Activities(r.Context(), 0)
	if err != nil {
		failRedirect(w, r, err, "/admin")
		return
	}

	data := pageData(r)
	data["Activities"] = activities
	if categories, err := h.api.Categories(r.Context()); err == nil {
		data["Categories"] = categories
	}
	render(w, r, h.templates, "admin_activities.html", data)
}

func (h *AdminCatalogHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	input, err := activityInputFromForm(r)
	if err != nil {
		session.SetFlash(session.FromContext(r.Context()), err.Error())
		http.Redirect(w, r, "/admin/activities", http.StatusSeeOther)
		return
	}
	h.proxy(w, r, h.api.CreateActivity(r.Context(), input), "/admin/activities", "Activity created.")
}

func (h *AdminCatalogHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	input, err := activityInputFromForm(r)
	if err != nil {
		session.SetFlash(session.FromContext(r.Context()), err.Error())
		http.Redirect(w, r, "/admin/activities", http.StatusSeeOther)
		return
	}
	id := chi.URLParam(r, "id")
	h.proxy(w, r, h.api.UpdateActivity(r.Context(), id, input), "/admin/activities", "Activity updated.")
}

func (h *AdminCatalogHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.proxy(w, r, h.api.DeleteActivity(r.Context(), id), "/admin/activities", "Activity deleted.")
}

func activityInputFromForm(r *http.Request) (api.ActivityInput, error) {
	if err := r.ParseForm(); err != nil {
		return api.ActivityInput{}, err
	}
	input := api.ActivityInput{
		CategoryID:    r.FormValue("category_id"),
		Title:         strings.TrimSpace(r.FormValue("title")),
		Description:   strings.TrimSpace(r.FormValue("description")),
		Price:         parseFloat(r.FormValue("price")),
		PriceDiscount: parseFloat(r.FormValue("price_discount")),
		Facilities:    strings.TrimSpace(r.FormValue("facilities")),
		Address:       strings.TrimSpace(r.FormValue("address")),
		City:          strings.TrimSpace(r.FormValue("city")),
		Province:      strings.TrimSpace(r.FormValue("province")),
	}
	for _, u := range strings.Fields(r.FormValue("image_urls")) {
		input.ImageURLs = append(input.ImageURLs, u)
	}
	return input, nil
}

// --- promos ---

func (h *AdminCatalogHandler) PromosPage(w http.ResponseWriter, r *http.Request) {
	promos, err := h.api.Promos(r.Context())
	if err != nil {
		failRedirect(w, r, err, "/admin")
		return
	}
	data := pageData(r)
	data["Promos"] = promos
	render(w, r, h.templates, "admin_promos.html", data)
}

func (h *AdminCatalogHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	h.proxy(w, r, h.api.CreatePromo(r.Context(), promoInputFromForm(r)), "/admin/promos", "Promo created.")
}

func (h *AdminCatalogHandler) UpdatePromo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")
	h.proxy(w, r, h.api.UpdatePromo(r.Context(), id, promoInputFromForm(r)), "/admin/promos", "Promo updated.")
}

func (h *AdminCatalogHandler) DeletePromo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.proxy(w, r, h.api.DeletePromo(r.Context(), id), "/admin/promos", "Promo deleted.")
}

func promoInputFromForm(r *http.Request) api.PromoInput {
	return api.PromoInput{
		Title:              strings.TrimSpace(r.FormValue("title")),
		Description:        strings.TrimSpace(r.FormValue("description")),
		ImageURL:           strings.TrimSpace(r.FormValue("image_url")),
		TermsCondition:     strings.TrimSpace(r.FormValue("terms_condition")),
		PromoCode:          strings.TrimSpace(r.FormValue("promo_code")),
		PromoDiscountPrice: parseFloat(r.FormValue("promo_discount_price")),
		MinimumClaimPrice:  parseFloat(r.FormValue("minimum_claim_price")),
	}
}

// --- banners ---

func (h *AdminCatalogHandler) BannersPage(w http.ResponseWriter, r *http.Request) {
	banners, err := h.api.Banners(r.Context())
	if err != nil {
		failRedirect(w, r, err, "/admin")
		return
	}
	data := pageData(r)
	data["Banners"] = banners
	render(w, r, h.templates, "admin_banners.html", data)
}

func (h *AdminCatalogHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	input := api.BannerInput{
		Name:     strings.TrimSpace(r.FormValue("name")),
		ImageURL: strings.TrimSpace(r.FormValue("image_url")),
	}
	h.proxy(w, r, h.api.CreateBanner(r.Context(), input), "/admin/banners", "Banner created.")
}

func (h *AdminCatalogHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")
	input := api.BannerInput{
		Name:     strings.TrimSpace(r.FormValue("name")),
		ImageURL: strings.TrimSpace(r.FormValue("image_url")),
	}
	h.proxy(w, r, h.api.UpdateBanner(r.Context(), id, input), "/admin/banners", "Banner updated.")
}

func (h *AdminCatalogHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.proxy(w, r, h.api.DeleteBanner(r.Context(), id), "/admin/banners", "Banner deleted.")
}

// --- payment methods ---

func (h *AdminCatalogHandler) PaymentMethodsPage(w http.ResponseWriter, r *http.Request) {
	methods, err := h.api.PaymentMethods(r.Context())
	if err != nil {
		failRedirect(w, r, err, "/admin")
		return
	}
	data := pageData(r)
	data["PaymentMethods"] = methods
	render(w, r, h.templates, "admin_payment_methods.html", data)
}

func (h *AdminCatalogHandler) CreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	h.proxy(w, r, h.api.CreatePaymentMethod(r.Context(), paymentMethodInputFromForm(r)),
		"/admin/payment-methods", "Payment method created.")
}

func (h *AdminCatalogHandler) UpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")
	h.proxy(w, r, h.api.UpdatePaymentMethod(r.Context(), id, paymentMethodInputFromForm(r)),
		"/admin/payment-methods", "Payment method updated.")
}

func (h *AdminCatalogHandler) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.proxy(w, r, h.api.DeletePaymentMethod(r.Context(), id), "/admin/payment-methods", "Payment method deleted.")
}

func paymentMethodInputFromForm(r *http.Request) api.PaymentMethodInput {
	input := api.PaymentMethodInput{
		Name:     strings.TrimSpace(r.FormValue("name")),
		ImageURL: strings.TrimSpace(r.FormValue("image_url")),
	}
	if v := r.FormValue("is_active"); v != "" {
		active := v == "true" || v == "on" || v == "1"
		input.IsActive = &active
	}
	return input
}

// proxy finishes a mutation: flash on success, failRedirect on error.
func (h *AdminCatalogHandler) proxy(w http.ResponseWriter, r *http.Request, err error, to, success string) {
	if err != nil {
		failRedirect(w, r, err, to)
		return
	}
	session.SetFlash(session.FromContext(r.Context()), success)
	http.Redirect(w, r, to, http.StatusSeeOther)
}
